package mocks

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/store"
)

// MockAnswerStore is a function-field implementation of store.AnswerStore.
type MockAnswerStore struct {
	CreateAnswerFn func(ctx context.Context, answer domain.Answer) (domain.AnswerDetail, error)
	GetAnswersFn   func(ctx context.Context, questionUUID string) ([]domain.AnswerDetail, error)
	DeleteAnswerFn func(ctx context.Context, answerUUID string) error
}

var _ store.AnswerStore = (*MockAnswerStore)(nil)

// CreateAnswer implements store.AnswerStore.
func (m *MockAnswerStore) CreateAnswer(ctx context.Context, answer domain.Answer) (domain.AnswerDetail, error) {
	if m.CreateAnswerFn != nil {
		return m.CreateAnswerFn(ctx, answer)
	}
	return domain.AnswerDetail{}, nil
}

// GetAnswers implements store.AnswerStore.
func (m *MockAnswerStore) GetAnswers(ctx context.Context, questionUUID string) ([]domain.AnswerDetail, error) {
	if m.GetAnswersFn != nil {
		return m.GetAnswersFn(ctx, questionUUID)
	}
	return []domain.AnswerDetail{}, nil
}

// DeleteAnswer implements store.AnswerStore.
func (m *MockAnswerStore) DeleteAnswer(ctx context.Context, answerUUID string) error {
	if m.DeleteAnswerFn != nil {
		return m.DeleteAnswerFn(ctx, answerUUID)
	}
	return nil
}
