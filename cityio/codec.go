package cityio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/citytour/geom"
)

// Read decodes a city file from r.
func Read(r io.Reader) ([]geom.City, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, shortRead(err)
	}
	if n < 0 || n > MaxCities {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}

	raw := make([]int32, 2*int(n))
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, shortRead(err)
	}

	cities := make([]geom.City, n)
	var i int
	for i = range cities {
		cities[i] = geom.City{X: int(raw[2*i]), Y: int(raw[2*i+1])}
	}

	return cities, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) ([]geom.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cityio: open %s: %w", path, err)
	}
	defer f.Close()

	cities, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("cityio: %s: %w", path, err)
	}

	return cities, nil
}

// Write encodes cities to w in the city file format.
func Write(w io.Writer, cities []geom.City) error {
	if len(cities) > MaxCities {
		return fmt.Errorf("%w: %d", ErrBadCount, len(cities))
	}

	raw := make([]int32, 1+2*len(cities))
	raw[0] = int32(len(cities))
	var i int
	for i = range cities {
		c := cities[i]
		if !fitsInt32(c.X) || !fitsInt32(c.Y) {
			return fmt.Errorf("%w: city %d at (%d, %d)", ErrCoordinateRange, i, c.X, c.Y)
		}
		raw[1+2*i] = int32(c.X)
		raw[2+2*i] = int32(c.Y)
	}

	if err := binary.Write(w, binary.LittleEndian, raw); err != nil {
		return fmt.Errorf("cityio: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes cities to it.
func WriteFile(path string, cities []geom.City) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cityio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cityio: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = Write(bw, cities); err != nil {
		return err
	}

	return bw.Flush()
}

func shortRead(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrShortRead
	}

	return fmt.Errorf("cityio: read: %w", err)
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
