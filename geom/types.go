package geom

import (
	"errors"
	"strconv"
)

// ErrTooFewCities is returned when fewer than two cities are supplied;
// a cyclic tour over zero or one city is undefined.
var ErrTooFewCities = errors.New("geom: at least two cities are required")

// City is a point on the integer map grid. Cities are immutable once loaded
// and are addressed by their index in the owning slice.
type City struct {
	X int
	Y int
}

// Label returns the map label of city i: "C_0", "C_1", ….
func Label(i int) string {
	return "C_" + strconv.Itoa(i)
}
