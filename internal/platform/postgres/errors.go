package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/qa-api/internal/store"
)

// PostgreSQL error codes. Only foreign key violations are classified as
// KindInvalidUUID; every other code is KindOther.
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
// This occurs when a write references a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// parseUUID parses a caller-supplied identifier. entity names the identifier in the
// error message, which is built only from the caller's input.
func parseUUID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, store.NewInvalidUUIDError(
			fmt.Sprintf("Could not parse %s UUID: %s", entity, raw))
	}
	return id, nil
}

// classifyWriteError maps an error from an INSERT that carries a foreign reference.
// A foreign key violation means the referenced row does not exist and becomes
// KindInvalidUUID with unresolvedMessage; everything else, including unique, check
// and not-null violations, is KindOther.
func classifyWriteError(err error, unresolvedMessage string) *store.DBError {
	if IsForeignKeyViolation(err) {
		return &store.DBError{
			Kind:    store.KindInvalidUUID,
			Message: unresolvedMessage,
			Err:     err,
		}
	}
	return store.NewOtherError(err)
}
