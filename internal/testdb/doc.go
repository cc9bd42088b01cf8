// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured, migrate the schema once with SetupTestDatabaseSchema,
// and run each scenario inside WithTx so that nothing they write survives the test.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.SetupTestDatabaseSchema(t, db)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // use tx
//	    })
//	}
//
// A statement that fails inside a PostgreSQL transaction aborts it, so a scenario
// that provokes a constraint violation should get a transaction of its own.
//
// The helpers are compiled only with the integration build tag.
package testdb
