package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/session"
	"conway-life/internal/store"
)

// ReadPre asks for the pre-run count. An empty answer means 0 (unbounded).
func ReadPre(in *bufio.Reader, out io.Writer) (int, error) {
	fmt.Fprintf(out, "Pre-run generations [0-%d, 0 = unbounded]: ", session.MaxPre)
	fields, err := readFields(in)
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, nil
	}
	if len(fields) > 1 {
		return 0, apperrors.Newf(apperrors.CodeInvalidArguments, "expected one pre-run count, got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, apperrors.Newf(apperrors.CodeInvalidArguments, "pre-run count %q is not an integer", fields[0])
	}
	return n, CheckPre(n)
}

// CheckPre validates a pre-run count.
func CheckPre(n int) error {
	if n < 0 || n > session.MaxPre {
		return apperrors.Newf(apperrors.CodeInvalidArguments, "pre-run count %d outside [0, %d]", n, session.MaxPre)
	}
	return nil
}

// ReadDimensions asks for the board size of a fresh board. An empty answer
// keeps rows and columns.
func ReadDimensions(in *bufio.Reader, out io.Writer, rows, columns int) (int, int, error) {
	fmt.Fprintf(out, "Board size as \"rows columns\" [%d %d]: ", rows, columns)
	fields, err := readFields(in)
	if err != nil {
		return 0, 0, err
	}
	if len(fields) == 0 {
		return rows, columns, nil
	}
	if len(fields) != 2 {
		return 0, 0, apperrors.Newf(apperrors.CodeInvalidArguments, "expected rows and columns, got %q", strings.Join(fields, " "))
	}
	dims := [2]int{}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return 0, 0, apperrors.Newf(apperrors.CodeInvalidArguments, "board dimension %q must be a positive integer", f)
		}
		if n > store.MaxDimension {
			return 0, 0, apperrors.Newf(apperrors.CodeInvalidArguments, "board dimension %d exceeds %d", n, store.MaxDimension)
		}
		dims[i] = n
	}
	return dims[0], dims[1], nil
}

func readFields(in *bufio.Reader) ([]string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.Wrap(apperrors.CodeIO, "read stdin", err)
	}
	return strings.Fields(line), nil
}

// ExitCode maps a startup error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, apperrors.ErrInvalidArguments):
		return 2
	default:
		return 1
	}
}
