// Package vectors loads and checks golden encoding vectors.
//
// A vector file is TOML with one array of tables per encoding family
// ([[nanbox]], [[f62]], [[n64]]). Each vector names the kind of value, the
// value itself and the word it must encode to.
package vectors

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed vectors.toml
var defaultVectors []byte

// File is a parsed vector file.
type File struct {
	NaNBox []Vector `toml:"nanbox"`
	F62    []Vector `toml:"f62"`
	N64    []Vector `toml:"n64"`

	// Path is the file the vectors were loaded from (set at load time).
	Path string `toml:"-"`
}

// Vector is a single golden encoding.
type Vector struct {
	Kind  string `toml:"kind"`
	Value string `toml:"value"`
	Word  string `toml:"word"`

	// Decoded is the value the word decodes to when it differs from
	// Value, as it does for truncated inputs.
	Decoded string `toml:"decoded"`

	// Absent means the word does not decode as Kind at all.
	Absent bool `toml:"absent"`
}

// Default returns the vectors shipped with the module.
func Default() (*File, error) {
	f, err := Parse(defaultVectors)
	if err != nil {
		return nil, err
	}
	f.Path = "<default>"
	return f, nil
}

// Load parses a vector file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse parses vector file contents. Unknown keys are rejected so that a
// misspelled field cannot silently disable a check.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &f, nil
}

// Len returns the total number of vectors.
func (f *File) Len() int {
	return len(f.NaNBox) + len(f.F62) + len(f.N64)
}
