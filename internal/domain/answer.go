package domain

import "time"

// Answer is the caller-supplied input for a new answer. QuestionUUID must reference
// an existing question.
type Answer struct {
	QuestionUUID string `json:"question_uuid" validate:"required"`
	Content      string `json:"content"       validate:"required"`
}

// AnswerDetail is a persisted answer.
type AnswerDetail struct {
	AnswerUUID   string    `json:"answer_uuid"`
	QuestionUUID string    `json:"question_uuid"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnswerID identifies an answer in delete requests.
type AnswerID struct {
	AnswerUUID string `json:"answer_uuid" validate:"required"`
}
