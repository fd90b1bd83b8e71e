package editor

import "errors"

var (
	ErrInvalidTime   = errors.New("invalid time, expected HH:mm")
	ErrUnknownStatus = errors.New("unknown day status")
)
