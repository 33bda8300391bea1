// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - UnauthorizedOrderAccessError: For when the acting identity may not touch an order
//   - InvalidStateTransitionError / DuplicateParcelError: For aggregate invariant violations
//   - ConcurrencyConflictError: For optimistic-concurrency version mismatches on update
//   - OutboxWriteFailureError: For failures while capturing outbox messages
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, enabling errors.Is classification
//
// The sentinel classification is what the message-processing layer relies on:
// business-rule errors (see IsTerminal) end the current command, while
// everything else is treated as transient and triggers redelivery.
package errs
