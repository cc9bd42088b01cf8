package store

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
)

// QuestionStore defines the interface for question persistence.
// Every non-nil error returned is a *DBError.
type QuestionStore interface {
	// CreateQuestion inserts a question. The store assigns the identifier and
	// creation timestamp. Any failure is reported as KindOther.
	CreateQuestion(ctx context.Context, question domain.Question) (domain.QuestionDetail, error)

	// GetQuestions returns every stored question in no particular order.
	// Returns an empty slice when there are none.
	GetQuestions(ctx context.Context) ([]domain.QuestionDetail, error)

	// DeleteQuestion removes a question and, through the schema, its answers.
	// Returns KindInvalidUUID if questionUUID is malformed. Deleting a well-formed
	// identifier that does not exist succeeds.
	DeleteQuestion(ctx context.Context, questionUUID string) error
}
