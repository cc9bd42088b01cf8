// Package mocks provides centralized test doubles for the store interfaces.
//
// Each mock has one function field per interface method. A nil field makes
// the method return the zero value and a nil error, so a test only sets the
// behaviour it cares about:
//
//	questions := &mocks.MockQuestionStore{
//	    DeleteQuestionFn: func(ctx context.Context, id string) error {
//	        return store.NewInvalidUUIDError("Could not parse question UUID: " + id)
//	    },
//	}
//
// Mocks hold no shared mutable state beyond what the test closes over, so they
// are safe to use from parallel tests.
package mocks
