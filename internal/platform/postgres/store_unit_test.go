package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// untouchableDBTX fails the test if any statement reaches the database.
type untouchableDBTX struct {
	t *testing.T
}

func (m *untouchableDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	m.t.Errorf("unexpected ExecContext: %s", query)
	return nil, nil
}

func (m *untouchableDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	m.t.Errorf("unexpected QueryContext: %s", query)
	return nil, nil
}

func (m *untouchableDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	m.t.Errorf("unexpected QueryRowContext: %s", query)
	return nil
}

// closedDB returns a pgx-backed *sql.DB that has already been closed, so every
// statement fails without a server being involved.
func closedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", "postgres://qa:qa@127.0.0.1:1/qa?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return db
}

var malformedUUIDs = []string{"", "not-a-uuid", "12345", "6f1c0b9e-2d3a-4c4e-9a57-0d0e7a8c1f2"}

func TestStoresRejectMalformedUUIDs(t *testing.T) {
	ctx := context.Background()
	questions := NewQuestionStore(&untouchableDBTX{t: t}, nil)
	answers := NewAnswerStore(&untouchableDBTX{t: t}, nil)

	for _, raw := range malformedUUIDs {
		t.Run("delete_question_"+raw, func(t *testing.T) {
			err := questions.DeleteQuestion(ctx, raw)
			assert.True(t, store.IsInvalidUUID(err), "got %v", err)
		})

		t.Run("delete_answer_"+raw, func(t *testing.T) {
			err := answers.DeleteAnswer(ctx, raw)
			assert.True(t, store.IsInvalidUUID(err), "got %v", err)
		})

		t.Run("get_answers_"+raw, func(t *testing.T) {
			result, err := answers.GetAnswers(ctx, raw)
			assert.True(t, store.IsInvalidUUID(err), "got %v", err)
			assert.Nil(t, result)
		})

		t.Run("create_answer_"+raw, func(t *testing.T) {
			_, err := answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: raw, Content: "x"})
			assert.True(t, store.IsInvalidUUID(err), "got %v", err)
		})
	}
}

func TestStoresReportClosedPoolAsOther(t *testing.T) {
	ctx := context.Background()
	db := closedDB(t)
	questions := NewQuestionStore(db, nil)
	answers := NewAnswerStore(db, nil)
	validID := "6f1c0b9e-2d3a-4c4e-9a57-0d0e7a8c1f22"

	t.Run("create_question", func(t *testing.T) {
		_, err := questions.CreateQuestion(ctx, domain.Question{
			Title:       "test title",
			Description: "test description",
		})
		require.Error(t, err)
		assert.True(t, store.IsOther(err), "got %v", err)
	})

	t.Run("get_questions", func(t *testing.T) {
		result, err := questions.GetQuestions(ctx)
		assert.True(t, store.IsOther(err), "got %v", err)
		assert.Nil(t, result)
	})

	t.Run("delete_question", func(t *testing.T) {
		assert.True(t, store.IsOther(questions.DeleteQuestion(ctx, validID)))
	})

	t.Run("create_answer", func(t *testing.T) {
		_, err := answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: validID, Content: "c"})
		assert.True(t, store.IsOther(err), "got %v", err)
	})

	t.Run("get_answers", func(t *testing.T) {
		_, err := answers.GetAnswers(ctx, validID)
		assert.True(t, store.IsOther(err), "got %v", err)
	})

	t.Run("delete_answer", func(t *testing.T) {
		assert.True(t, store.IsOther(answers.DeleteAnswer(ctx, validID)))
	})
}

func TestNewStoresPanicOnNilDB(t *testing.T) {
	assert.Panics(t, func() { NewQuestionStore(nil, slog.Default()) })
	assert.Panics(t, func() { NewAnswerStore(nil, slog.Default()) })
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestMigrateUnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), closedDB(t), "sideways", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}
