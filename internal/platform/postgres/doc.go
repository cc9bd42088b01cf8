// Package postgres provides the PostgreSQL implementations of the store interfaces
// together with the embedded schema migrations.
//
// Stores run on database/sql with the pgx driver and accept any store.DBTX, so the
// same code serves the shared connection pool and test transactions. This package is
// the only place where driver errors are inspected: foreign key violations (SQLSTATE
// 23503) on writes become store.KindInvalidUUID, everything else store.KindOther.
package postgres
