package grid2d

import (
	"fmt"
	"strings"
)

// lines trims surrounding blank space and splits text into rows,
// dropping any carriage returns left by CRLF files.
func lines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	rows := strings.Split(text, "\n")
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, "\r")
	}
	return rows
}

// ParseRunes builds a rune grid from line-delimited text, one row per line.
// Leading and trailing blank space around the whole text is ignored.
// Returns ErrEmptyGrid for empty text and ErrNonRectangular for ragged rows.
func ParseRunes(text string) (*Grid[rune], error) {
	rows := lines(text)
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]rune, len(rows))
	for y, r := range rows {
		out[y] = []rune(r)
	}
	return FromRows(out)
}

// ParseDigits builds a grid of single-digit values ('0'..'9') from
// line-delimited text. Width is the length of the first row, height the
// number of rows.
// Returns ErrEmptyGrid for empty text, ErrNonRectangular for ragged rows and
// ErrMalformedInput (with the offending position) for any non-digit.
func ParseDigits(text string) (*Grid[int], error) {
	rows := lines(text)
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]int, len(rows))
	for y, r := range rows {
		row := make([]int, len(r))
		for x := 0; x < len(r); x++ {
			c := r[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d) is not a digit", ErrMalformedInput, c, x, y)
			}
			row[x] = int(c - '0')
		}
		out[y] = row
	}
	return FromRows(out)
}
