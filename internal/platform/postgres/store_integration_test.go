//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/qa-api/internal/domain"
	"github.com/phrazzld/qa-api/internal/platform/postgres"
	"github.com/phrazzld/qa-api/internal/store"
	"github.com/phrazzld/qa-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup returns a migrated test database, skipping when none is configured.
func setup(t *testing.T) *sql.DB {
	t.Helper()

	db := testdb.GetTestDBWithT(t)
	testdb.SetupTestDatabaseSchema(t, db)
	return db
}

func questionUUIDs(questions []domain.QuestionDetail) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionUUID)
	}
	return ids
}

func TestQuestionStore_CreateAndGet(t *testing.T) {
	db := setup(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		questions := postgres.NewQuestionStore(db, nil).WithTx(tx)

		before, err := questions.GetQuestions(ctx)
		require.NoError(t, err)

		created, err := questions.CreateQuestion(ctx, domain.Question{Title: "t", Description: "d"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.QuestionUUID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, "t", created.Title)
		assert.Equal(t, "d", created.Description)

		after, err := questions.GetQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)

		var matches []domain.QuestionDetail
		for _, q := range after {
			if q.QuestionUUID == created.QuestionUUID {
				matches = append(matches, q)
			}
		}
		require.Len(t, matches, 1)
		assert.Equal(t, "t", matches[0].Title)
		assert.Equal(t, "d", matches[0].Description)
		assert.True(t, created.CreatedAt.Equal(matches[0].CreatedAt))
	})
}

func TestQuestionStore_Delete(t *testing.T) {
	db := setup(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		questions := postgres.NewQuestionStore(tx, nil)

		kept, err := questions.CreateQuestion(ctx, domain.Question{Title: "kept", Description: "d"})
		require.NoError(t, err)
		removed, err := questions.CreateQuestion(ctx, domain.Question{Title: "removed", Description: "d"})
		require.NoError(t, err)

		require.NoError(t, questions.DeleteQuestion(ctx, removed.QuestionUUID))

		remaining, err := questions.GetQuestions(ctx)
		require.NoError(t, err)
		ids := questionUUIDs(remaining)
		assert.Contains(t, ids, kept.QuestionUUID)
		assert.NotContains(t, ids, removed.QuestionUUID)

		t.Run("deleting again is a silent success", func(t *testing.T) {
			assert.NoError(t, questions.DeleteQuestion(ctx, removed.QuestionUUID))
		})

		t.Run("deleting an unknown id is a silent success", func(t *testing.T) {
			assert.NoError(t, questions.DeleteQuestion(ctx, uuid.NewString()))
		})
	})
}

func TestAnswerStore_CreateGetDelete(t *testing.T) {
	db := setup(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		questions := postgres.NewQuestionStore(tx, nil)
		answers := postgres.NewAnswerStore(tx, nil)

		q, err := questions.CreateQuestion(ctx, domain.Question{Title: "t", Description: "d"})
		require.NoError(t, err)

		empty, err := answers.GetAnswers(ctx, q.QuestionUUID)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		created, err := answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: q.QuestionUUID, Content: "c"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.AnswerUUID)
		assert.Equal(t, q.QuestionUUID, created.QuestionUUID)

		got, err := answers.GetAnswers(ctx, q.QuestionUUID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created.AnswerUUID, got[0].AnswerUUID)
		assert.Equal(t, "c", got[0].Content)

		require.NoError(t, answers.DeleteAnswer(ctx, created.AnswerUUID))
		got, err = answers.GetAnswers(ctx, q.QuestionUUID)
		require.NoError(t, err)
		assert.Empty(t, got)

		assert.NoError(t, answers.DeleteAnswer(ctx, uuid.NewString()))
	})
}

func TestAnswerStore_UnknownQuestionIsInvalidUUID(t *testing.T) {
	db := setup(t)

	// The foreign key violation aborts the transaction, so this scenario gets its own.
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		answers := postgres.NewAnswerStore(tx, nil)
		unknown := uuid.NewString()

		_, err := answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: unknown, Content: "x"})

		require.Error(t, err)
		assert.True(t, store.IsInvalidUUID(err), "expected InvalidUUID, got %v", err)
		assert.False(t, store.IsOther(err))
		dbErr, ok := store.AsDBError(err)
		require.True(t, ok)
		assert.Contains(t, dbErr.Message, unknown)
	})
}

func TestDeleteQuestionCascadesToAnswers(t *testing.T) {
	db := setup(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		questions := postgres.NewQuestionStore(tx, nil)
		answers := postgres.NewAnswerStore(tx, nil)

		q, err := questions.CreateQuestion(ctx, domain.Question{Title: "t", Description: "d"})
		require.NoError(t, err)
		_, err = answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: q.QuestionUUID, Content: "a1"})
		require.NoError(t, err)
		_, err = answers.CreateAnswer(ctx, domain.Answer{QuestionUUID: q.QuestionUUID, Content: "a2"})
		require.NoError(t, err)

		require.NoError(t, questions.DeleteQuestion(ctx, q.QuestionUUID))

		var count int
		require.NoError(t, tx.QueryRowContext(ctx,
			`SELECT count(*) FROM answer WHERE question_uuid = $1`, q.QuestionUUID).Scan(&count))
		assert.Zero(t, count)
	})
}
