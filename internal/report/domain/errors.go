package domain

import "errors"

var (
	ErrInvalidDateRange = errors.New("date range start must not be after end")
)
