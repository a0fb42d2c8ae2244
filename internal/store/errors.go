package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a note lookup, update, or delete
	// targets an id that does not exist for the given owner. An existing
	// note owned by somebody else produces the same error: the two cases
	// are indistinguishable to the caller.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrTagNotFound is returned when a tag lookup, rename, or delete
	// targets an id (or name) that does not exist for the given owner.
	// As with notes, foreign ownership and absence look identical.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrTagNameTaken is returned when an insert or rename collides with
	// the UNIQUE (user_id, name) constraint on tags. During tag
	// resolution this is not a failure: the resolver re-fetches the row
	// that won the race and uses it.
	ErrTagNameTaken = errors.New("tag name already exists for this user")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
