// Package mazefile reads maze problems from their text form and writes
// solved direction sequences back out.
//
// Input layout:
//
//	(0,0)        start point, line 1
//	(2,2)        end point, line 2
//	0 0 1        grid rows: whitespace-separated cell codes (0..255)
//	1 0 1
//	1 0 0
//
// Point lines are split on '(', ')' and ','; trimmed tokens that are not
// all digits are dropped, so "start(0, 6)" reads as (0,6). Grid tokens that
// are not all digits are ignored and lines with no numeric token are skipped.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingPoint indicates the input ended before the start or end line.
	ErrMissingPoint = errors.New("mazefile: missing point line")

	// ErrMalformedPoint indicates a point line without exactly two coordinates.
	ErrMalformedPoint = errors.New("mazefile: malformed point")

	// ErrBadCell indicates a numeric grid token outside 0..255.
	ErrBadCell = errors.New("mazefile: cell value out of range")
)

// Problem is a parsed maze: the grid and the two endpoints.
type Problem struct {
	Grid  *gridgraph.GridGraph
	Start gridgraph.Point
	End   gridgraph.Point
}

// Parse reads a Problem from r. Grid shape errors wrap gridgraph.ErrInvalidGrid.
// Endpoints are not bounds-checked here; the solvers do that.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		pts  [2]gridgraph.Point
		line int
	)
	for i := range pts {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("mazefile: read: %w", err)
			}
			return nil, fmt.Errorf("%w: line %d", ErrMissingPoint, i+1)
		}
		line++
		p, err := ParsePoint(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts[i] = p
	}

	var cells [][]uint8
	for sc.Scan() {
		line++
		row, err := parseRow(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) == 0 {
			continue
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}

	g, err := gridgraph.From2D(cells)
	if err != nil {
		return nil, err
	}

	return &Problem{Grid: g, Start: pts[0], End: pts[1]}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Problem, error) {
	return Parse(strings.NewReader(s))
}

// Load opens path and parses it.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ParsePoint reads "(row,col)" style text into a Point.
func ParsePoint(s string) (gridgraph.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '(' || r == ')' || r == ','
	})
	nums := make([]int, 0, 2)
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if !isDigits(f) {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return gridgraph.Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, s, err)
		}
		nums = append(nums, v)
	}
	if len(nums) != 2 {
		return gridgraph.Point{}, fmt.Errorf("%w: %q has %d coordinates", ErrMalformedPoint, s, len(nums))
	}

	return gridgraph.Point{Row: nums[0], Col: nums[1]}, nil
}

// parseRow returns the numeric cell codes of one grid line.
func parseRow(s string) ([]uint8, error) {
	var row []uint8
	for _, tok := range strings.Fields(s) {
		if !isDigits(tok) {
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCell, tok)
		}
		row = append(row, uint8(v))
	}

	return row, nil
}

// isDigits reports whether s is non-empty and made of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
