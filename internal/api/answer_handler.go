package api

import (
	"net/http"

	"github.com/phrazzld/qa-api/internal/api/shared"
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/handler"
	"github.com/phrazzld/qa-api/internal/store"
)

// QuestionUUIDQueryParam selects the question for GET /answers when no body is sent.
const QuestionUUIDQueryParam = "question_uuid"

// AnswerHandler serves the answer routes.
type AnswerHandler struct {
	answers store.AnswerStore
}

// NewAnswerHandler creates an AnswerHandler backed by answers.
func NewAnswerHandler(answers store.AnswerStore) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

// CreateAnswer handles POST /answer.
func (h *AnswerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req domain.Answer
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := handler.CreateAnswer(r.Context(), req, h.answers)
	if err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// GetAnswers handles GET /answers. The question is taken from the
// question_uuid query parameter, or from a QuestionID body when absent.
func (h *AnswerHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	var req domain.QuestionID
	if q := r.URL.Query().Get(QuestionUUIDQueryParam); q != "" {
		req.QuestionUUID = q
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	details, err := handler.GetAnswers(r.Context(), req, h.answers)
	if err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	if details == nil {
		details = []domain.AnswerDetail{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, details)
}

// DeleteAnswer handles DELETE /answer with an AnswerID body.
func (h *AnswerHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	var req domain.AnswerID
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := handler.DeleteAnswer(r.Context(), req, h.answers); err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
