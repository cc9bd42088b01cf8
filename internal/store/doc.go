// Package store defines the persistence interfaces for questions and answers and the
// storage-level error taxonomy shared by all implementations.
//
// Implementations classify backend failures exactly once, into a *DBError of kind
// KindInvalidUUID (the caller's identifier was malformed or unresolvable) or
// KindOther (the backend failed). Callers consult only the kind.
package store
