// Package handler implements the six question and answer operations on top of
// the store interfaces.
//
// Each operation takes a context, its input and the store it needs, and
// returns either the stored detail or a *Error. Store failures are translated
// once, here: a store.DBError of kind InvalidUUID becomes a BadRequest carrying
// the store's message for operations that accept a caller identifier, and
// everything else becomes an Internal error with a fixed, generic message. The
// underlying cause is logged before translation and never returned to callers.
package handler
