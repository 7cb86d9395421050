package cave

import "errors"

var (
	ErrInvalidDimensions  = errors.New("cave: width and height must be positive")
	ErrInvalidFillPercent = errors.New("cave: fill percent must be within [0, 100]")
	ErrInvalidParameter   = errors.New("cave: parameter must not be negative")
	ErrEmptyRoomSet       = errors.New("cave: no rooms survived pruning")
	ErrOutOfBounds        = errors.New("cave: coordinate outside grid")
	ErrUnreachableRoom    = errors.New("cave: room cannot be connected to the main room")
)
