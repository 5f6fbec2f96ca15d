package chemdata

import "errors"

// Data layer errors. Lookup functions never return these; they surface
// only from [Preload], [Source.Table] and [TableByName].
var (
	// ErrHeader indicates a header row that is missing or does not start
	// with the CAS and Chemical columns.
	ErrHeader = errors.New("chemdata: malformed table header")

	// ErrBadCell indicates a value cell that is neither blank nor a number.
	ErrBadCell = errors.New("chemdata: malformed numeric cell")

	// ErrDuplicateCAS indicates a CAS number appearing on two rows of one table.
	ErrDuplicateCAS = errors.New("chemdata: duplicate CAS number")

	// ErrUnknownTable indicates a table name absent from the registry.
	ErrUnknownTable = errors.New("chemdata: unknown table")
)
