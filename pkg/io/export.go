package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/ganttline/pkg/task"
)

// Write encodes s in canonical order and writes it to w.
func Write(w io.Writer, s task.Schedule, format Format) error {
	out := s.Sorted()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatBSON:
		data, err := bson.Marshal(out)
		if err != nil {
			return fmt.Errorf("encode bson: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		_, err := ParseFormat(string(format))
		return err
	}
	return nil
}

// Export writes s to path, choosing the format from its extension.
func Export(s task.Schedule, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, s, format); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
