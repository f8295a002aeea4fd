// Package store loads and saves a board together with its config file.
package store

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/sims/life"
)

// Mode tells the caller how the board was obtained.
type Mode int

const (
	// LoadedFromFile means the data file supplied every cell.
	LoadedFromFile Mode = iota
	// NeedsUserInit means the data file was empty or absent: the board is dead
	// and sized from the config, and the user should pick dimensions.
	NeedsUserInit
)

func (m Mode) String() string {
	switch m {
	case LoadedFromFile:
		return "loaded"
	case NeedsUserInit:
		return "needs-user-init"
	default:
		return "unknown"
	}
}

// Loaded is the result of Load.
type Loaded struct {
	Board  *life.Board
	Config Config
	Mode   Mode
}

// Load parses the config file, then the data file against the configured
// dimensions.
func Load(configPath, dataPath string) (*Loaded, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeIO, "read config", err)
	}
	cfg, err := ParseConfig(bytes.NewReader(raw), configPath)
	if err != nil {
		return nil, err
	}

	board := life.New(cfg.Rows, cfg.Columns)
	board.SetDelay(cfg.Delay)

	raw, err = os.ReadFile(dataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Loaded{Board: board, Config: cfg, Mode: NeedsUserInit}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeIO, "read data", err)
	}
	cells, empty, err := ParseData(bytes.NewReader(raw), dataPath, cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}
	if empty {
		return &Loaded{Board: board, Config: cfg, Mode: NeedsUserInit}, nil
	}
	copy(board.Cells(), cells)
	return &Loaded{Board: board, Config: cfg, Mode: LoadedFromFile}, nil
}

// Save writes the board's shape and delay plus cellSize to configPath and its
// cells to dataPath. Each file is written to a temporary sibling and renamed
// into place, so readers never observe a half-written file.
func Save(configPath, dataPath string, b *life.Board, cellSize int) error {
	cfg := Config{Rows: b.Rows(), Columns: b.Columns(), Delay: b.Delay(), CellSize: cellSize}
	var buf bytes.Buffer
	if err := WriteConfig(&buf, cfg); err != nil {
		return apperrors.Wrap(apperrors.CodeIO, "encode config", err)
	}
	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}
	buf.Reset()
	if err := WriteData(&buf, b); err != nil {
		return apperrors.Wrap(apperrors.CodeIO, "encode data", err)
	}
	return writeAtomic(dataPath, buf.Bytes())
}

func writeAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeIO, "create temp file for "+path, err)
	}
	name := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(name)
		return apperrors.Wrap(apperrors.CodeIO, "chmod "+path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return apperrors.Wrap(apperrors.CodeIO, "write "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return apperrors.Wrap(apperrors.CodeIO, "close "+path, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return apperrors.Wrap(apperrors.CodeIO, "replace "+path, err)
	}
	return nil
}
