package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NoDigit marks a ParseDigits cell that held something other than 0-9.
const NoDigit = -1

// Parse reads a rectangular block of text, one row per line, decoding each
// rune with cell. Trailing whitespace on a line and blank trailing lines are
// ignored; a blank line inside the block ends it.
//
// Errors from cell are wrapped with ErrBadCell and the 1-based line and
// column of the offending rune.
func Parse[T any](r io.Reader, cell func(rune) (T, error)) (*Grid[T], error) {
	var rows [][]T
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		row := make([]T, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			v, err := cell(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %d:%d: %v", ErrBadCell, line, col, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return FromRows(rows)
}

// ParseRunes reads a character grid verbatim.
func ParseRunes(r io.Reader) (*Grid[rune], error) {
	return Parse(r, func(ch rune) (rune, error) { return ch, nil })
}

// ParseDigits reads a grid of decimal digits. Any other character becomes
// NoDigit so that fixtures with '.' holes still load.
func ParseDigits(r io.Reader) (*Grid[int], error) {
	return Parse(r, func(ch rune) (int, error) {
		if ch < '0' || ch > '9' {
			return NoDigit, nil
		}
		return int(ch - '0'), nil
	})
}

// Format renders g one row per line using cell to pick each rune.
func Format[T any](g *Grid[T], cell func(T) rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for i, v := range g.cells {
		b.WriteRune(cell(v))
		if (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
