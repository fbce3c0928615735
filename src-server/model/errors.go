package model

import "errors"

var (
	ErrNameBlank         = errors.New("event name is blank")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrInvalidDayOfWeek  = errors.New("day of week must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidStartTime  = errors.New("start time must be within a single day")
	ErrNegativeDuration  = errors.New("duration must not be negative")
	ErrNoMonthsSpecified = errors.New("no months specified")
)
