package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"go.mongodb.org/mongo-driver/bson"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Read decodes a schedule in the given format from r and normalizes it.
// Read does not close r.
func Read(r io.Reader, format Format) (task.Schedule, error) {
	var s task.Schedule
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return s, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return s, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return s, gerrors.New(gerrors.ErrCodeInvalidFormat, "decode toml: unknown key %s", undecoded[0])
		}
	case FormatBSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return s, fmt.Errorf("read: %w", err)
		}
		if err := bson.Unmarshal(data, &s); err != nil {
			return s, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "decode bson")
		}
	default:
		_, err := ParseFormat(string(format))
		return s, err
	}
	return normalize(s)
}

// ReadBytes is Read over an in-memory document.
func ReadBytes(data []byte, format Format) (task.Schedule, error) {
	return Read(bytes.NewReader(data), format)
}

// Import reads the schedule file at path, choosing the format from its
// extension.
func Import(path string) (task.Schedule, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return task.Schedule{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return task.Schedule{}, gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return task.Schedule{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, format)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func normalize(s task.Schedule) (task.Schedule, error) {
	for _, t := range s.Tasks {
		if t.ID == "" {
			return s, gerrors.New(gerrors.ErrCodeInvalidTaskID, "task %q has no id", t.Name)
		}
		if t.Kind != "" && !t.Kind.IsValid() {
			return s, gerrors.New(gerrors.ErrCodeInvalidFormat, "task %s: unknown kind %q", t.ID, t.Kind)
		}
	}
	for i, d := range s.Dependencies {
		if d.Type == "" {
			continue
		}
		typ, err := task.ParseDependencyType(string(d.Type))
		if err != nil {
			return s, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "dependency %s->%s", d.From, d.To)
		}
		s.Dependencies[i].Type = typ
	}
	return s.Normalize(), nil
}
