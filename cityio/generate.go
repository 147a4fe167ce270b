package cityio

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/citytour/geom"
)

// defaultSeed replaces seed 0 so that generated files are reproducible.
const defaultSeed = 1

// Generate returns n random cities inside a width×height map. City i is
// placed with 0 ≤ x < width−len(geom.Label(i)) and 0 ≤ y < height, so its label
// never leaves the map. Coincident cities are possible.
//
// Errors: ErrBadCount for n < 0 or n > MaxCities; ErrCoordinateRange when
// the map is too small for the longest label.
func Generate(n, width, height int, seed int64) ([]geom.City, error) {
	if n < 0 || n > MaxCities {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return []geom.City{}, nil
	}
	if height < 1 || width-len(geom.Label(n-1)) < 1 {
		return nil, fmt.Errorf("%w: %dx%d map cannot hold %d labelled cities",
			ErrCoordinateRange, width, height, n)
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	cities := make([]geom.City, n)
	var i int
	for i = range cities {
		cities[i] = geom.City{
			X: rng.Intn(width - len(geom.Label(i))),
			Y: rng.Intn(height),
		}
	}

	return cities, nil
}
