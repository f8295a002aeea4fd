package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := At(CodeDataParse, "board.txt", 3, 7, "unexpected %q", 'x')
	if !stderrors.Is(err, ErrDataParse) {
		t.Fatal("expected data parse error to match its sentinel")
	}
	if stderrors.Is(err, ErrConfigParse) {
		t.Fatal("data parse error must not match config parse sentinel")
	}

	wrapped := fmt.Errorf("load: %w", err)
	if !stderrors.Is(wrapped, ErrDataParse) {
		t.Fatal("expected match through fmt.Errorf wrapping")
	}
	if got := CodeOf(wrapped); got != CodeDataParse {
		t.Fatalf("expected code %s, got %s", CodeDataParse, got)
	}
}

func TestErrorFormatsPosition(t *testing.T) {
	err := At(CodeConfigParse, "life.conf", 2, 9, "unknown key %q", "speed")
	want := `life.conf:2:9: unknown key "speed"`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	bare := New(CodeInvalidArguments, "")
	if bare.Error() != "invalid arguments" {
		t.Fatalf("expected code-derived message, got %q", bare.Error())
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	err := Wrap(CodeIO, "read config", fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if !stderrors.Is(err, ErrIO) {
		t.Fatal("expected IO sentinel match")
	}
	if CodeOf(fs.ErrNotExist) != "" {
		t.Fatal("plain errors carry no code")
	}
}
