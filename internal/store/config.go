package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/sims/life"
)

// Config holds the parameters kept in the config file.
type Config struct {
	Rows     int
	Columns  int
	Delay    int
	CellSize int // 0 lets the viewport pick a size that fits the window
}

// DefaultConfig returns the values used for keys missing from the file.
func DefaultConfig() Config {
	return Config{Rows: 32, Columns: 32, Delay: life.DefaultDelay}
}

type configKey struct {
	set func(c *Config, v int)
	min int
	max int
}

var configKeys = map[string]configKey{
	"rows":      {set: func(c *Config, v int) { c.Rows = v }, min: 1, max: MaxDimension},
	"columns":   {set: func(c *Config, v int) { c.Columns = v }, min: 1, max: MaxDimension},
	"delay":     {set: func(c *Config, v int) { c.Delay = v }, min: life.MinDelay, max: life.MaxDelay},
	"cell_size": {set: func(c *Config, v int) { c.CellSize = v }, min: 1, max: MaxCellSize},
}

const (
	// MaxDimension bounds rows and columns.
	MaxDimension = 4096
	// MaxCellSize bounds cell_size, in pixels.
	MaxCellSize = 256
)

// ParseConfig reads `key value` lines. Unknown and repeated keys are errors;
// missing keys keep their defaults. name is only used in error positions.
func ParseConfig(r io.Reader, name string) (Config, error) {
	cfg := DefaultConfig()
	seen := map[string]int{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := fieldsWithColumns(text)
		if len(fields) == 0 {
			continue
		}
		key := fields[0]
		kf, ok := configKeys[key.text]
		if !ok {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, key.col, "unknown key %q", key.text)
		}
		if prev, dup := seen[key.text]; dup {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, key.col, "key %q already set on line %d", key.text, prev)
		}
		if len(fields) == 1 {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, key.col+len(key.text), "missing value for %q", key.text)
		}
		if len(fields) > 2 {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, fields[2].col, "unexpected %q after value", fields[2].text)
		}
		val := fields[1]
		n, err := strconv.Atoi(val.text)
		if err != nil {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, val.col, "value %q for %q is not an integer", val.text, key.text)
		}
		if n < kf.min || n > kf.max {
			return Config{}, apperrors.At(apperrors.CodeConfigParse, name, line, val.col, "%s %d outside [%d, %d]", key.text, n, kf.min, kf.max)
		}
		kf.set(&cfg, n)
		seen[key.text] = line
	}
	if err := sc.Err(); err != nil {
		return Config{}, apperrors.Wrap(apperrors.CodeIO, "read "+name, err)
	}
	return cfg, nil
}

// WriteConfig writes every parameter, one per line, in a fixed order. A zero
// CellSize is left out so the file keeps meaning "fit the window".
func WriteConfig(w io.Writer, cfg Config) error {
	if _, err := fmt.Fprintf(w, "rows %d\ncolumns %d\ndelay %d\n", cfg.Rows, cfg.Columns, cfg.Delay); err != nil {
		return err
	}
	if cfg.CellSize <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "cell_size %d\n", cfg.CellSize)
	return err
}

type field struct {
	text string
	col  int
}

// fieldsWithColumns splits s on whitespace, keeping 1-based byte columns.
func fieldsWithColumns(s string) []field {
	var out []field
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, field{text: s[start:i], col: start + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, field{text: strings.TrimSpace(s[start:]), col: start + 1})
	}
	return out
}
