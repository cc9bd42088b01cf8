package mocks

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/store"
)

// MockQuestionStore is a function-field implementation of store.QuestionStore.
type MockQuestionStore struct {
	CreateQuestionFn func(ctx context.Context, question domain.Question) (domain.QuestionDetail, error)
	GetQuestionsFn   func(ctx context.Context) ([]domain.QuestionDetail, error)
	DeleteQuestionFn func(ctx context.Context, questionUUID string) error
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

// CreateQuestion implements store.QuestionStore.
func (m *MockQuestionStore) CreateQuestion(
	ctx context.Context,
	question domain.Question,
) (domain.QuestionDetail, error) {
	if m.CreateQuestionFn != nil {
		return m.CreateQuestionFn(ctx, question)
	}
	return domain.QuestionDetail{}, nil
}

// GetQuestions implements store.QuestionStore.
func (m *MockQuestionStore) GetQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	if m.GetQuestionsFn != nil {
		return m.GetQuestionsFn(ctx)
	}
	return []domain.QuestionDetail{}, nil
}

// DeleteQuestion implements store.QuestionStore.
func (m *MockQuestionStore) DeleteQuestion(ctx context.Context, questionUUID string) error {
	if m.DeleteQuestionFn != nil {
		return m.DeleteQuestionFn(ctx, questionUUID)
	}
	return nil
}
