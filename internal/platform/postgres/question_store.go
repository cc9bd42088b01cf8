package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/platform/logger"
	"github.com/phrazzld/qa-api/internal/redact"
	"github.com/phrazzld/qa-api/internal/store"
)

// QuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type QuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// It accepts a database connection or transaction that is initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewQuestionStore(db store.DBTX, logger *slog.Logger) *QuestionStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure QuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*QuestionStore)(nil)

// WithTx returns a QuestionStore that runs its statements on tx.
func (s *QuestionStore) WithTx(tx *sql.Tx) *QuestionStore {
	return &QuestionStore{db: tx, logger: s.logger}
}

// CreateQuestion implements store.QuestionStore.CreateQuestion.
func (s *QuestionStore) CreateQuestion(
	ctx context.Context,
	question domain.Question,
) (domain.QuestionDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO question (title, description)
		VALUES ($1, $2)
		RETURNING question_uuid, title, description, created_at
	`

	var id uuid.UUID
	var detail domain.QuestionDetail
	err := s.db.QueryRowContext(ctx, query, question.Title, question.Description).Scan(
		&id,
		&detail.Title,
		&detail.Description,
		&detail.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create question",
			slog.String("error", redact.Error(err)))
		return domain.QuestionDetail{}, store.NewOtherError(err)
	}

	detail.QuestionUUID = id.String()
	detail.CreatedAt = detail.CreatedAt.UTC()

	log.Debug("question created",
		slog.String("question_uuid", detail.QuestionUUID))
	return detail, nil
}

// GetQuestions implements store.QuestionStore.GetQuestions.
func (s *QuestionStore) GetQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT question_uuid, title, description, created_at
		FROM question
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query questions",
			slog.String("error", redact.Error(err)))
		return nil, store.NewOtherError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	questions := []domain.QuestionDetail{}
	for rows.Next() {
		var id uuid.UUID
		var q domain.QuestionDetail
		if err := rows.Scan(&id, &q.Title, &q.Description, &q.CreatedAt); err != nil {
			log.Error("failed to scan question row",
				slog.String("error", redact.Error(err)))
			return nil, store.NewOtherError(err)
		}
		q.QuestionUUID = id.String()
		q.CreatedAt = q.CreatedAt.UTC()
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning question rows",
			slog.String("error", redact.Error(err)))
		return nil, store.NewOtherError(err)
	}

	log.Debug("questions retrieved", slog.Int("count", len(questions)))
	return questions, nil
}

// DeleteQuestion implements store.QuestionStore.DeleteQuestion.
// Answers referencing the question are removed by the ON DELETE CASCADE constraint.
func (s *QuestionStore) DeleteQuestion(ctx context.Context, questionUUID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseUUID("question", questionUUID)
	if err != nil {
		log.Debug("rejected malformed question UUID",
			slog.String("question_uuid", questionUUID))
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE question_uuid = $1`, id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", redact.Error(err)),
			slog.String("question_uuid", id.String()))
		return store.NewOtherError(err)
	}

	// A missing row is not an error: deletes are idempotent.
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Warn("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("question_uuid", id.String()))
		return nil
	}

	log.Debug("question deleted",
		slog.String("question_uuid", id.String()),
		slog.Int64("rows_affected", rowsAffected))
	return nil
}
