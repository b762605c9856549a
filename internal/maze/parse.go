package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const rowCount = SizeY * SizeZ

// ParseGrid reads a maze in the text format from r.
//
// The input is 25 non-blank rows of 5 whitespace-separated integers each.
// Rows are consumed in layer order (z), then row order (y); the tokens of a
// row are the cells x=0..4. Blank lines are accepted anywhere and act as
// layer separators. Problems are reported in reading order, and the
// entrance/exit check runs only after all 125 values were read.
func ParseGrid(r io.Reader) (Grid, error) {
	var grid Grid

	scanner := bufio.NewScanner(r)
	lineNo := 0
	row := 0

	for scanner.Scan() {
		lineNo++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if row == rowCount {
			return Grid{}, fmt.Errorf("%w: unexpected content on line %d after %d values", ErrTooManyValues, lineNo, CellCount)
		}

		y, z := row%SizeY, row/SizeY

		for x, tok := range fields {
			if x == SizeX {
				return Grid{}, fmt.Errorf("%w: line %d has more than %d values", ErrTooManyValues, lineNo, SizeX)
			}

			state, err := parseCell(tok)
			if err != nil {
				return Grid{}, fmt.Errorf("%w: line %d: %q", err, lineNo, tok)
			}

			grid.Set(Coord{x, y, z}, state)
		}

		if len(fields) < SizeX {
			return Grid{}, fmt.Errorf("%w: line %d has %d of %d values", ErrTooFewValues, lineNo, len(fields), SizeX)
		}

		row++
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Grid{}, fmt.Errorf("%w: line %d is too long", ErrTooManyValues, lineNo+1)
		}

		return Grid{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if row < rowCount {
		return Grid{}, fmt.Errorf("%w: got %d of %d rows", ErrTooFewValues, row, rowCount)
	}

	if grid.At(Entrance) == Blocked || grid.At(Exit) == Blocked {
		return Grid{}, ErrMissingEntranceOrExit
	}

	return grid, nil
}

func parseCell(tok string) (Cell, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrInvalidValue
		}

		return 0, ErrMalformedValue
	}

	switch n {
	case 0:
		return Blocked, nil
	case 1:
		return Open, nil
	default:
		return 0, ErrInvalidValue
	}
}
