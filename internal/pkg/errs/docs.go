// Package errs provides the error taxonomy shared by the order fulfillment service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrObjectNotFound)
//   - a struct type carrying the error details and an optional Cause
//   - constructor functions with and without a cause
//   - Unwrap returning both the sentinel and the cause
//
// The sentinels map one-to-one onto the transport error classes:
//   - ErrObjectNotFound: the entity is absent or not owned by the caller
//   - ErrConflict: the aggregate state forbids the operation
//   - ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired: bad input
//
// Domain packages declare their own sentinels (for example a duplicate review) and pass
// them as the Cause, so callers can match either the class or the specific rule with
// errors.Is.
package errs
