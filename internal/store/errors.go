package store

import "errors"

// Sentinel errors returned by the metadata store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a requested metadata document does not
	// exist.
	ErrNotFound = errors.New("metadata not found")

	// ErrInvalidLocation is returned when a vault location is not a single
	// plain path element and could escape the profile vault root.
	ErrInvalidLocation = errors.New("invalid vault location")

	// ErrCorruptedDocument is returned when a metadata document exists but
	// cannot be decoded.
	ErrCorruptedDocument = errors.New("metadata document is corrupted")

	// ErrEventNotFound is returned when a recovery event id matches no row.
	ErrEventNotFound = errors.New("recovery event not found")
)

// Low-level database operation errors, returned wrapped by the recovery
// journal when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan recovery event rows")
)
