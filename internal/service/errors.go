package service

import "errors"

var (
	ErrInvalidRoundingUnit = errors.New("rounding unit must be one of 1, 5, 10, 15, 30, 60")
	ErrInvalidShortcut     = errors.New("shortcut number must be between 1 and 9")
	ErrEmptyTag            = errors.New("tag is empty")
	ErrUnsupportedFormat   = errors.New("unsupported report format")
)
