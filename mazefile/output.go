package mazefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// FormatDirections joins moves as "Down, Down, Right, Right".
func FormatDirections(dirs []gridgraph.Direction) string {
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = d.String()
	}

	return strings.Join(parts, ", ")
}

// ParseDirections is the inverse of FormatDirections. Empty input yields an
// empty slice.
func ParseDirections(s string) ([]gridgraph.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []gridgraph.Direction{}, nil
	}
	parts := strings.Split(s, ",")
	dirs := make([]gridgraph.Direction, 0, len(parts))
	for _, p := range parts {
		d, err := gridgraph.ParseDirection(p)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}

	return dirs, nil
}

// WriteDirections writes the formatted moves to w with no trailing newline.
func WriteDirections(w io.Writer, dirs []gridgraph.Direction) error {
	if _, err := io.WriteString(w, FormatDirections(dirs)); err != nil {
		return fmt.Errorf("mazefile: write: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes the formatted moves.
func WriteFile(path string, dirs []gridgraph.Direction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazefile: create %s: %w", path, err)
	}
	if err = WriteDirections(f, dirs); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("mazefile: close %s: %w", path, err)
	}

	return nil
}
