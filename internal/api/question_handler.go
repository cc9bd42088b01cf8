package api

import (
	"net/http"

	"github.com/phrazzld/qa-api/internal/api/shared"
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/handler"
	"github.com/phrazzld/qa-api/internal/store"
)

// QuestionHandler serves the question routes.
type QuestionHandler struct {
	questions store.QuestionStore
}

// NewQuestionHandler creates a QuestionHandler backed by questions.
func NewQuestionHandler(questions store.QuestionStore) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// CreateQuestion handles POST /question.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req domain.Question
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := handler.CreateQuestion(r.Context(), req, h.questions)
	if err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// GetQuestions handles GET /questions.
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	details, err := handler.GetQuestions(r.Context(), h.questions)
	if err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	if details == nil {
		details = []domain.QuestionDetail{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, details)
}

// DeleteQuestion handles DELETE /question with a QuestionID body.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	var req domain.QuestionID
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := handler.DeleteQuestion(r.Context(), req, h.questions); err != nil {
		respondWithHandlerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
