package handler

import (
	"context"

	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/store"
)

// CreateAnswer stores an answer for an existing question. A malformed or
// unknown question identifier is a BadRequest.
func CreateAnswer(
	ctx context.Context,
	answer domain.Answer,
	answers store.AnswerStore,
) (domain.AnswerDetail, error) {
	detail, err := answers.CreateAnswer(ctx, answer)
	if err != nil {
		return domain.AnswerDetail{}, translate(ctx, OpCreateAnswer, err, true)
	}
	return detail, nil
}

// GetAnswers returns the answers of the identified question.
func GetAnswers(ctx context.Context, id domain.QuestionID, answers store.AnswerStore) ([]domain.AnswerDetail, error) {
	details, err := answers.GetAnswers(ctx, id.QuestionUUID)
	if err != nil {
		return nil, translate(ctx, OpGetAnswers, err, true)
	}
	return details, nil
}

// DeleteAnswer removes the identified answer.
func DeleteAnswer(ctx context.Context, id domain.AnswerID, answers store.AnswerStore) error {
	if err := answers.DeleteAnswer(ctx, id.AnswerUUID); err != nil {
		return translate(ctx, OpDeleteAnswer, err, true)
	}
	return nil
}
