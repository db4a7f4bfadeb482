package store

import "errors"

var (
	// ErrMissingID is returned when a record is stored without an id.
	ErrMissingID = errors.New("record is missing an id")
)
