package domain

import "time"

// Question is the caller-supplied input for a new question. It carries no identity;
// the store assigns one on creation.
type Question struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// QuestionDetail is a persisted question. QuestionUUID and CreatedAt are assigned
// by the store and never change afterwards.
type QuestionDetail struct {
	QuestionUUID string    `json:"question_uuid"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionID identifies a question in delete and lookup requests.
type QuestionID struct {
	QuestionUUID string `json:"question_uuid" validate:"required"`
}
