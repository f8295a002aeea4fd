package store

import (
	"bufio"
	"errors"
	"io"
	"strings"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/sims/life"
)

// ParseData reads a rows×columns grid of '0'/'1' characters. A file holding
// only whitespace reports empty=true and no cells. Spaces, tabs and carriage
// returns around a row are ignored, and so are blank lines.
func ParseData(r io.Reader, name string, rows, columns int) (cells []uint8, empty bool, err error) {
	cells = make([]uint8, 0, rows*columns)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes(columns))
	line, row := 0, 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		body := strings.TrimLeft(raw, " \t")
		lead := len(raw) - len(body)
		body = strings.TrimRight(body, " \t\r")
		if body == "" {
			continue
		}
		if row == rows {
			return nil, false, apperrors.At(apperrors.CodeDimensionsMismatch, name, line, lead+1,
				"more than %d rows", rows)
		}
		for i := 0; i < len(body); i++ {
			switch body[i] {
			case '0':
				cells = append(cells, 0)
			case '1':
				cells = append(cells, 1)
			default:
				return nil, false, apperrors.At(apperrors.CodeDataParse, name, line, lead+i+1,
					"unexpected %q, want '0' or '1'", body[i])
			}
		}
		if len(body) != columns {
			return nil, false, apperrors.At(apperrors.CodeDimensionsMismatch, name, line, lead+1,
				"row has %d cells, want %d", len(body), columns)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, false, apperrors.At(apperrors.CodeDimensionsMismatch, name, line+1, 0,
				"line longer than %d bytes, want %d cells", maxLineBytes(columns), columns)
		}
		return nil, false, apperrors.Wrap(apperrors.CodeIO, "read "+name, err)
	}
	if row == 0 {
		return nil, true, nil
	}
	if row != rows {
		return nil, false, apperrors.At(apperrors.CodeDimensionsMismatch, name, line, 0,
			"found %d rows, want %d", row, rows)
	}
	return cells, false, nil
}

// maxLineBytes is the longest data line accepted: a full row plus generous
// room for surrounding whitespace.
func maxLineBytes(columns int) int {
	return 4*columns + 64*1024
}

// WriteData writes the board as one line of '0'/'1' per row.
func WriteData(w io.Writer, b *life.Board) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, b.Columns()+1)
	line[b.Columns()] = '\n'
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Columns(); c++ {
			line[c] = '0' + b.Get(r, c)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
