package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/qa-api/internal/platform/logger"
	"github.com/phrazzld/qa-api/internal/redact"
	"github.com/phrazzld/qa-api/internal/store"
)

// translate converts a store failure into a handler Error. When
// acceptsIdentifier is false, an InvalidUUID from the store is unexpected and
// is reported as Internal.
func translate(ctx context.Context, operation string, err error, acceptsIdentifier bool) *Error {
	log := logger.FromContextOrDefault(ctx, nil).With(slog.String("operation", operation))

	var hErr *Error
	dbErr, ok := store.AsDBError(err)
	switch {
	case ok && dbErr.Kind == store.KindInvalidUUID && acceptsIdentifier:
		log.Warn("store rejected caller identifier",
			slog.String("error", redact.Error(err)))
		hErr = BadRequest(dbErr.Message)
	case ok && dbErr.Kind == store.KindInvalidUUID:
		log.Error("store returned an identifier error for an operation without identifiers",
			slog.String("error", redact.Error(err)))
		hErr = InternalError()
	case ok:
		log.Error("store operation failed",
			slog.String("error", redact.Error(err)))
		hErr = InternalError()
	default:
		log.Error("unclassified store failure",
			slog.String("error", redact.Error(err)),
			slog.String("error_type", typeName(err)))
		hErr = InternalError()
	}

	ErrorsTotal.WithLabelValues(operation, hErr.Kind.String()).Inc()
	return hErr
}

func typeName(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", err)
}
