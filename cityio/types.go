package cityio

import "errors"

var (
	// ErrShortRead is returned when the stream ends before n cities were read.
	ErrShortRead = errors.New("cityio: truncated city file")

	// ErrBadCount is returned for a negative or implausibly large city count.
	ErrBadCount = errors.New("cityio: invalid city count")

	// ErrCoordinateRange is returned when a coordinate cannot be stored as
	// int32, or when a generator box cannot hold a labelled city.
	ErrCoordinateRange = errors.New("cityio: coordinate out of range")
)

// MaxCities bounds the header count accepted by Read.
const MaxCities = 1 << 20
