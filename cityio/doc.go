// Package cityio reads and writes city files and generates random instances.
//
// A city file is a flat little-endian stream of 32-bit signed integers:
//
//	n
//	x₀ y₀
//	x₁ y₁
//	…
//
// Read rejects truncated streams (ErrShortRead) and implausible headers
// (ErrBadCount). Write rejects coordinates that do not fit in int32
// (ErrCoordinateRange). Errors from the underlying reader or writer are
// wrapped with %w.
//
// Generate draws cities that fit a render map of the given size, leaving
// room to the right of each city for its "C_i" label.
package cityio
