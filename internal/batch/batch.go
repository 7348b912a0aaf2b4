// Package batch maps point lists to the set of KMA grid cells they fall in.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pspoerri/kmagrid/internal/coord"
)

// LineError records a point that could not be mapped to a cell.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// Result is the outcome of Collect.
type Result struct {
	Cells  []coord.Grid // unique cells in Hilbert order
	Counts map[coord.Grid]int
	Errors []LineError
	Points int // points successfully mapped
}

// Collect reads "lon lat" pairs, one per line, separated by whitespace or a
// comma. Blank lines and lines starting with '#' are skipped. Points that fail
// to parse or project are reported in Result.Errors; only a read failure of
// r is returned as error.
func Collect(r io.Reader) (Result, error) {
	res := Result{Counts: make(map[coord.Grid]int)}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		lon, lat, err := ParsePoint(text)
		if err == nil {
			var g coord.Grid
			g, err = coord.FromGCS(lon, lat)
			if err == nil {
				if res.Counts[g] == 0 {
					res.Cells = append(res.Cells, g)
				}
				res.Counts[g]++
				res.Points++
				continue
			}
		}
		res.Errors = append(res.Errors, LineError{Line: line, Err: err})
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("reading points: %w", err)
	}

	coord.SortGridsByHilbert(res.Cells)
	return res, nil
}

// ParsePoint parses "lon lat" or "lon,lat".
func ParsePoint(s string) (lon, lat float64, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields (lon lat), got %d in %q", len(fields), s)
	}
	if lon, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	if lat, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	return lon, lat, nil
}
