package handler

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/store"
)

// CreateQuestion stores a new question and returns it with its assigned
// identifier and creation time. Every failure is Internal.
func CreateQuestion(
	ctx context.Context,
	question domain.Question,
	questions store.QuestionStore,
) (domain.QuestionDetail, error) {
	detail, err := questions.CreateQuestion(ctx, question)
	if err != nil {
		return domain.QuestionDetail{}, translate(ctx, OpCreateQuestion, err, false)
	}
	return detail, nil
}

// GetQuestions returns every stored question. Every failure is Internal.
func GetQuestions(ctx context.Context, questions store.QuestionStore) ([]domain.QuestionDetail, error) {
	details, err := questions.GetQuestions(ctx)
	if err != nil {
		return nil, translate(ctx, OpGetQuestions, err, false)
	}
	return details, nil
}

// DeleteQuestion removes the identified question. A malformed identifier is a
// BadRequest.
func DeleteQuestion(ctx context.Context, id domain.QuestionID, questions store.QuestionStore) error {
	if err := questions.DeleteQuestion(ctx, id.QuestionUUID); err != nil {
		return translate(ctx, OpDeleteQuestion, err, true)
	}
	return nil
}
