package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update or delete matches no row.
	// Rows hidden by an ownership filter are reported the same way.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on a unique_violation (23505), e.g. a
	// duplicate user email or case slug.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrReferenceNotFound is returned on a foreign_key_violation (23503),
	// e.g. a project assigned to a user that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrConstraintViolation is returned for check and not-null violations
	// that slipped past input validation.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to iterate rows")
)
