package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the question and answer routes on r.
func RegisterRoutes(r chi.Router, questions *QuestionHandler, answers *AnswerHandler) {
	r.Post("/question", questions.CreateQuestion)
	r.Get("/questions", questions.GetQuestions)
	r.Delete("/question", questions.DeleteQuestion)

	r.Post("/answer", answers.CreateAnswer)
	r.Get("/answers", answers.GetAnswers)
	r.Delete("/answer", answers.DeleteAnswer)
}
