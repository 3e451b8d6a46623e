// Package mapdata loads terrain layers from text grids described by a YAML
// manifest.
//
// A grid file holds one row per line, top row first. Rows are either runs
// of single digits ("0110") or integers separated by whitespace or commas
// ("12 12 40"). Rows are rotated on load so that the result is indexed
// cells[x][y] with y pointing up.
package mapdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

var (
	ErrBadCell   = errors.New("mapdata: bad cell value")
	ErrEmptyFile = errors.New("mapdata: empty grid")
)

// ReadGridFile reads a grid from path.
func ReadGridFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid %s: %w", path, err)
	}
	defer f.Close()

	cells, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("reading grid %s: %w", path, err)
	}
	return cells, nil
}

// ReadGrid parses a grid and returns it x-major with row 0 of the input as
// the top (highest y) row.
func ReadGrid(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: %d cells, want %d", line, pathfind.ErrNonRectangular, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rotate(rows), nil
}

func parseRow(text string) ([]int, error) {
	if isDigits(text) {
		row := make([]int, len(text))
		for i, c := range text {
			row[i] = int(c - '0')
		}
		return row, nil
	}

	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	row := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCell, f)
		}
		row[i] = v
	}
	return row, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// rotate turns top-to-bottom rows into columns with y pointing up.
func rotate(rows [][]int) [][]int {
	h := len(rows)
	w := len(rows[0])
	cells := make([][]int, w)
	for x := range cells {
		cells[x] = make([]int, h)
		for y := range cells[x] {
			cells[x][y] = rows[h-1-y][x]
		}
	}
	return cells
}
