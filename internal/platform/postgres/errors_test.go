package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/qa-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil_error", nil, false},
		{"generic_error", errors.New("boom"), false},
		{"foreign_key_violation", &pgconn.PgError{Code: foreignKeyViolationCode}, true},
		{
			"wrapped_foreign_key_violation",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolationCode}),
			true,
		},
		{"unique_violation", &pgconn.PgError{Code: uniqueViolationCode}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsForeignKeyViolation(tt.err))
		})
	}
}

func TestClassifyWriteError(t *testing.T) {
	const unresolved = "Question with UUID 6f1c0b9e-0000-4000-8000-000000000000 does not exist"

	tests := []struct {
		name         string
		err          error
		expectedKind store.DBErrorKind
	}{
		{
			name: "foreign_key_violation",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "answer_question_uuid_fkey",
				Message:        "insert or update on table \"answer\" violates foreign key constraint",
			},
			expectedKind: store.KindInvalidUUID,
		},
		{
			name:         "unique_violation",
			err:          &pgconn.PgError{Code: uniqueViolationCode},
			expectedKind: store.KindOther,
		},
		{
			name:         "check_violation",
			err:          &pgconn.PgError{Code: checkViolationCode},
			expectedKind: store.KindOther,
		},
		{
			name:         "not_null_violation",
			err:          &pgconn.PgError{Code: notNullViolationCode},
			expectedKind: store.KindOther,
		},
		{
			name:         "connection_error",
			err:          errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"),
			expectedKind: store.KindOther,
		},
		{
			// Message text mentioning a foreign key must not influence classification.
			name:         "foreign_key_text_without_code",
			err:          errors.New("violates foreign key constraint"),
			expectedKind: store.KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbErr := classifyWriteError(tt.err, unresolved)

			require.NotNil(t, dbErr)
			assert.Equal(t, tt.expectedKind, dbErr.Kind)
			assert.ErrorIs(t, dbErr, tt.err, "the backend error must stay in the chain for logging")
			if tt.expectedKind == store.KindInvalidUUID {
				assert.Equal(t, unresolved, dbErr.Message)
			}
		})
	}
}

func TestParseUUID(t *testing.T) {
	id, err := parseUUID("question", "6f1c0b9e-2d3a-4c4e-9a57-0d0e7a8c1f22")
	require.NoError(t, err)
	assert.Equal(t, "6f1c0b9e-2d3a-4c4e-9a57-0d0e7a8c1f22", id.String())

	malformed := []string{"", "abc", "123", "6f1c0b9e-2d3a-4c4e-9a57", "zzzzzzzz-2d3a-4c4e-9a57-0d0e7a8c1f22"}
	for _, raw := range malformed {
		t.Run("malformed_"+raw, func(t *testing.T) {
			_, err := parseUUID("answer", raw)

			require.Error(t, err)
			assert.True(t, store.IsInvalidUUID(err))
			dbErr, ok := store.AsDBError(err)
			require.True(t, ok)
			assert.Equal(t, "Could not parse answer UUID: "+raw, dbErr.Message)
		})
	}
}

func TestSQLStateCodes(t *testing.T) {
	assert.Equal(t, "23503", foreignKeyViolationCode)
	assert.Equal(t, "23505", uniqueViolationCode)
	assert.Equal(t, "23514", checkViolationCode)
	assert.Equal(t, "23502", notNullViolationCode)
}
