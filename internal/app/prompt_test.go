package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/store"
)

func reader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

func TestReadPre(t *testing.T) {
	cases := map[string]int{"\n": 0, "": 0, " 42 \n": 42, "9999\n": 9999}
	for input, want := range cases {
		got, err := ReadPre(reader(input), io.Discard)
		if err != nil || got != want {
			t.Fatalf("input %q: got %d, %v; want %d", input, got, err, want)
		}
	}
	for _, input := range []string{"-1\n", "10000\n", "abc\n", "1 2\n"} {
		if _, err := ReadPre(reader(input), io.Discard); !errors.Is(err, apperrors.ErrInvalidArguments) {
			t.Fatalf("input %q: expected invalid arguments, got %v", input, err)
		}
	}
}

func TestReadDimensions(t *testing.T) {
	in := reader("\n12 30\n0 4\n")
	var out strings.Builder
	r, c, err := ReadDimensions(in, &out, 5, 6)
	if err != nil || r != 5 || c != 6 {
		t.Fatalf("empty answer should keep 5x6, got %dx%d %v", r, c, err)
	}
	if !strings.Contains(out.String(), "[5 6]") {
		t.Fatalf("prompt should show the defaults, got %q", out.String())
	}
	r, c, err = ReadDimensions(in, io.Discard, 5, 6)
	if err != nil || r != 12 || c != 30 {
		t.Fatalf("expected 12x30, got %dx%d %v", r, c, err)
	}
	if _, _, err := ReadDimensions(in, io.Discard, 5, 6); !errors.Is(err, apperrors.ErrInvalidArguments) {
		t.Fatalf("zero rows must be rejected, got %v", err)
	}
}

func TestReadDimensionsRejectsUnsavableSize(t *testing.T) {
	if _, _, err := ReadDimensions(reader("5000 2\n"), io.Discard, 5, 6); !errors.Is(err, apperrors.ErrInvalidArguments) {
		t.Fatalf("5000 rows cannot be saved and must be rejected, got %v", err)
	}
	r, c, err := ReadDimensions(reader(fmt.Sprintf("%d 2\n", store.MaxDimension)), io.Discard, 5, 6)
	if err != nil || r != store.MaxDimension || c != 2 {
		t.Fatalf("the largest savable size should be accepted, got %dx%d %v", r, c, err)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatal("nil error exits 0")
	}
	if ExitCode(fmt.Errorf("run: %w", apperrors.New(apperrors.CodeInvalidArguments, "bad"))) != 2 {
		t.Fatal("argument errors exit 2")
	}
	if ExitCode(apperrors.New(apperrors.CodeDataParse, "bad")) != 1 {
		t.Fatal("initialization errors exit 1")
	}
}
