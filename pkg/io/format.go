package io

import (
	"path/filepath"
	"strings"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
)

// Format is a schedule encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatBSON Format = "bson"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatTOML, FormatBSON}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatJSON, FormatTOML, FormatBSON:
		return f, nil
	}
	return "", gerrors.New(gerrors.ErrCodeInvalidFormat, "unsupported schedule format %q (want json, toml or bson)", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", gerrors.New(gerrors.ErrCodeInvalidFormat, "cannot infer format of %s: no extension", path)
	}
	return ParseFormat(ext)
}
