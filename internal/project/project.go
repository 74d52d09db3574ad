// Package project reads and writes scene files.
//
// A project is {"version": 1, "objects": [...]} where each object records
// id, type, name, pos, rotY, scale and color. JSON is the native format; files
// ending in .yaml or .yml use the same structure in YAML.
package project

import (
	"errors"
	"path/filepath"
	"strings"
)

// Version is the format version written to new files.
const Version = 1

// ErrMalformed is wrapped by every error caused by bad file contents.
var ErrMalformed = errors.New("malformed project")

// Format selects the encoding.
type Format int

// Supported formats.
const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatForPath picks the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Object is one persisted instance. Pointer and slice fields are optional on
// input; a present vector must have exactly three components.
type Object struct {
	ID    *int      `json:"id,omitempty" yaml:"id,omitempty"`
	Type  string    `json:"type" yaml:"type"`
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	Pos   []float32 `json:"pos,omitempty" yaml:"pos,omitempty,flow"`
	RotY  float32   `json:"rotY" yaml:"rotY"`
	Scale []float32 `json:"scale,omitempty" yaml:"scale,omitempty,flow"`
	Color string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Document is the top-level file structure. Objects is a pointer so a missing
// or null list can be told apart from an empty one.
type Document struct {
	Version int       `json:"version" yaml:"version"`
	Objects *[]Object `json:"objects" yaml:"objects"`
}
