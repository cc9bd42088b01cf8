package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/qa-api/internal/api/shared"
	"github.com/phrazzld/qa-api/internal/handler"
)

// MapErrorToStatusCode maps a handler error to its HTTP status code.
// Anything that is not a BadRequest is a 500.
func MapErrorToStatusCode(err error) int {
	if handler.IsBadRequest(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the message a client may see for err.
// BadRequest messages are built from caller input only; everything else gets
// the fixed internal message.
func GetSafeErrorMessage(err error) string {
	if hErr, ok := handler.AsError(err); ok && hErr.Kind == handler.KindBadRequest {
		return hErr.Message
	}
	return handler.InternalErrorMessage
}

// respondWithHandlerError writes the HTTP projection of a handler error.
func respondWithHandlerError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError turns a validator error into a short client message
// such as "Invalid title: required field".
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "uuid":
		return "invalid identifier format"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
