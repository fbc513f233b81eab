package dataset

import "errors"

// Common errors returned by the dataset package.
var (
	// ErrColumnNotFound is returned when a column name is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrEmptyData is returned when a table holds no rows or no columns.
	ErrEmptyData = errors.New("data is empty")
)
