package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation names used as the "operation" label.
const (
	OpCreateQuestion = "create_question"
	OpGetQuestions   = "get_questions"
	OpDeleteQuestion = "delete_question"
	OpCreateAnswer   = "create_answer"
	OpGetAnswers     = "get_answers"
	OpDeleteAnswer   = "delete_answer"
)

// ErrorsTotal counts translated handler errors by operation and kind.
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qa_handler_errors_total",
		Help: "Number of handler errors returned, by operation and kind.",
	},
	[]string{"operation", "kind"},
)
