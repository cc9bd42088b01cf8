// Package domain contains the plain value records exchanged between the transport,
// handler and store layers: questions, answers, and their identifier wrappers.
//
// Input records (Question, Answer) carry only caller-supplied fields. Detail records
// (QuestionDetail, AnswerDetail) are materialized rows whose identifiers and
// timestamps were assigned by the store. Identifiers are kept as strings here because
// callers may send anything; parsing happens in the store.
package domain
