package lipi

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnknownTable indicates a table ID that is not built in.
	ErrUnknownTable = errors.New("lipi: unknown table")

	// ErrTableNotFound indicates the table file does not exist.
	ErrTableNotFound = errors.New("lipi: table file not found")

	// ErrInvalidTable indicates a table that cannot be decoded or compiled.
	ErrInvalidTable = errors.New("lipi: invalid table")
)
