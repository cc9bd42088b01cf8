package store

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
)

// AnswerStore defines the interface for answer persistence.
// Every non-nil error returned is a *DBError.
type AnswerStore interface {
	// CreateAnswer inserts an answer for an existing question.
	// Returns KindInvalidUUID if answer.QuestionUUID is malformed or does not
	// reference an existing question.
	CreateAnswer(ctx context.Context, answer domain.Answer) (domain.AnswerDetail, error)

	// GetAnswers returns all answers for a question in no particular order.
	// Returns KindInvalidUUID if questionUUID is malformed; an unknown question
	// yields an empty slice.
	GetAnswers(ctx context.Context, questionUUID string) ([]domain.AnswerDetail, error)

	// DeleteAnswer removes an answer.
	// Returns KindInvalidUUID if answerUUID is malformed. Deleting a well-formed
	// identifier that does not exist succeeds.
	DeleteAnswer(ctx context.Context, answerUUID string) error
}
