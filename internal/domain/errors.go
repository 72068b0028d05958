package domain

import "errors"

var (
	// ErrInvalidResolution indicates a resolution outside day/week/month/quarter/year.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrInvalidWeekStart indicates a start-of-week index outside 0-6.
	ErrInvalidWeekStart = errors.New("invalid start of week")

	// ErrUnknownColumn indicates a column id that is not part of the task list.
	ErrUnknownColumn = errors.New("unknown column")
)
