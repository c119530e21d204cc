// Package lif reads cell coordinates from Life 1.06 pattern files.
package lif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header is the format identifier every Life 1.06 file starts with.
const Header = "#life 1.06"

// ErrHeader reports a missing or unrecognised format header.
var ErrHeader = errors.New("lif: not a life 1.06 file")

// HeaderError carries the header text that failed the check.
type HeaderError struct {
	Got string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("file header indicates this is not a life 1.06 file, it reads: %q", e.Got)
}

// Unwrap lets errors.Is match ErrHeader.
func (e *HeaderError) Unwrap() error { return ErrHeader }

// Point is one (x, y) cell coordinate relative to the pattern origin.
type Point struct {
	X, Y int
}

// Read checks the header and ingests up to maxPairs coordinate pairs. Pairs
// past the limit are discarded; ingest stops quietly at the first line that
// does not hold two integers.
func Read(r io.Reader, maxPairs int) ([]Point, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("lif: read header: %w", err)
		}
		return nil, &HeaderError{}
	}
	if err := checkHeader(sc.Text()); err != nil {
		return nil, err
	}

	var pts []Point
	for len(pts) < maxPairs && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, ok := parsePair(line)
		if !ok {
			break
		}
		pts = append(pts, p)
	}
	// An overlong line ends the coordinate list like any malformed line.
	if err := sc.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("lif: read pairs: %w", err)
	}
	return pts, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, maxPairs int) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern %s: %w", path, err)
	}
	defer f.Close()

	pts, err := Read(f, maxPairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

func checkHeader(line string) error {
	got := strings.ToLower(line)
	if len(got) < len(Header) || got[:len(Header)] != Header {
		return &HeaderError{Got: line}
	}
	return nil
}

func parsePair(line string) (Point, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Point{}, false
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
