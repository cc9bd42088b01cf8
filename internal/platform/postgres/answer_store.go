package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/platform/logger"
	"github.com/phrazzld/qa-api/internal/redact"
	"github.com/phrazzld/qa-api/internal/store"
)

// AnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
type AnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAnswerStore creates a new PostgreSQL implementation of the AnswerStore interface.
// If logger is nil, a default logger will be used.
func NewAnswerStore(db store.DBTX, logger *slog.Logger) *AnswerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure AnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*AnswerStore)(nil)

// WithTx returns an AnswerStore that runs its statements on tx.
func (s *AnswerStore) WithTx(tx *sql.Tx) *AnswerStore {
	return &AnswerStore{db: tx, logger: s.logger}
}

// CreateAnswer implements store.AnswerStore.CreateAnswer.
// The question reference is enforced by the foreign key; there is no prior lookup.
func (s *AnswerStore) CreateAnswer(
	ctx context.Context,
	answer domain.Answer,
) (domain.AnswerDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	questionID, err := parseUUID("question", answer.QuestionUUID)
	if err != nil {
		log.Debug("rejected malformed question UUID",
			slog.String("question_uuid", answer.QuestionUUID))
		return domain.AnswerDetail{}, err
	}

	query := `
		INSERT INTO answer (question_uuid, content)
		VALUES ($1, $2)
		RETURNING answer_uuid, question_uuid, content, created_at
	`

	var answerID, storedQuestionID uuid.UUID
	var detail domain.AnswerDetail
	err = s.db.QueryRowContext(ctx, query, questionID, answer.Content).Scan(
		&answerID,
		&storedQuestionID,
		&detail.Content,
		&detail.CreatedAt,
	)
	if err != nil {
		dbErr := classifyWriteError(err,
			fmt.Sprintf("Question with UUID %s does not exist", questionID))
		if dbErr.Kind == store.KindInvalidUUID {
			log.Warn("foreign key violation during answer creation",
				slog.String("question_uuid", questionID.String()))
		} else {
			log.Error("failed to create answer",
				slog.String("error", redact.Error(err)),
				slog.String("question_uuid", questionID.String()))
		}
		return domain.AnswerDetail{}, dbErr
	}

	detail.AnswerUUID = answerID.String()
	detail.QuestionUUID = storedQuestionID.String()
	detail.CreatedAt = detail.CreatedAt.UTC()

	log.Debug("answer created",
		slog.String("answer_uuid", detail.AnswerUUID),
		slog.String("question_uuid", detail.QuestionUUID))
	return detail, nil
}

// GetAnswers implements store.AnswerStore.GetAnswers.
func (s *AnswerStore) GetAnswers(
	ctx context.Context,
	questionUUID string,
) ([]domain.AnswerDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	questionID, err := parseUUID("question", questionUUID)
	if err != nil {
		log.Debug("rejected malformed question UUID",
			slog.String("question_uuid", questionUUID))
		return nil, err
	}

	query := `
		SELECT answer_uuid, question_uuid, content, created_at
		FROM answer
		WHERE question_uuid = $1
	`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		log.Error("failed to query answers",
			slog.String("error", redact.Error(err)),
			slog.String("question_uuid", questionID.String()))
		return nil, store.NewOtherError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	answers := []domain.AnswerDetail{}
	for rows.Next() {
		var answerID, qID uuid.UUID
		var a domain.AnswerDetail
		if err := rows.Scan(&answerID, &qID, &a.Content, &a.CreatedAt); err != nil {
			log.Error("failed to scan answer row",
				slog.String("error", redact.Error(err)))
			return nil, store.NewOtherError(err)
		}
		a.AnswerUUID = answerID.String()
		a.QuestionUUID = qID.String()
		a.CreatedAt = a.CreatedAt.UTC()
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning answer rows",
			slog.String("error", redact.Error(err)))
		return nil, store.NewOtherError(err)
	}

	log.Debug("answers retrieved",
		slog.String("question_uuid", questionID.String()),
		slog.Int("count", len(answers)))
	return answers, nil
}

// DeleteAnswer implements store.AnswerStore.DeleteAnswer.
func (s *AnswerStore) DeleteAnswer(ctx context.Context, answerUUID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseUUID("answer", answerUUID)
	if err != nil {
		log.Debug("rejected malformed answer UUID",
			slog.String("answer_uuid", answerUUID))
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM answer WHERE answer_uuid = $1`, id)
	if err != nil {
		log.Error("failed to delete answer",
			slog.String("error", redact.Error(err)),
			slog.String("answer_uuid", id.String()))
		return store.NewOtherError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Warn("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("answer_uuid", id.String()))
		return nil
	}

	log.Debug("answer deleted",
		slog.String("answer_uuid", id.String()),
		slog.Int64("rows_affected", rowsAffected))
	return nil
}
