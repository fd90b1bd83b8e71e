package logs

import "errors"

var (
	ErrEmptyDate   = errors.New("log date is empty")
	ErrInvalidDate = errors.New("invalid log date")
	ErrSlotEmpty   = errors.New("storage slot is empty")
)
