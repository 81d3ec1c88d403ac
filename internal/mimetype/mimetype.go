// Package mimetype maps file extensions to the Content-Type served for them.
package mimetype

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// OctetStream is returned for extensions that are not in the table.
const OctetStream = "application/octet-stream"

// ErrInvalidEntry is returned by Parse when a table entry is malformed.
var ErrInvalidEntry = errors.New("invalid media type entry")

//go:embed types.toml
var defaultTypes []byte

// Table is an immutable extension to media type mapping.
// The zero value is an empty table that answers OctetStream for everything.
type Table struct {
	types map[string]string
}

type tableFile struct {
	Types map[string]string `toml:"types"`
}

// Default decodes the table embedded in the binary.
func Default() (*Table, error) {
	return Parse(defaultTypes)
}

// Parse decodes a TOML document with a [types] section whose keys are
// lowercase extensions including the leading dot (e.g. ".html").
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode media types: %w", err)
	}

	types := make(map[string]string, len(f.Types))
	for ext, mediaType := range f.Types {
		if len(ext) < 2 || ext[0] != '.' || strings.ContainsRune(ext[1:], '.') {
			return nil, fmt.Errorf("%w: extension %q must be a single dot followed by a suffix", ErrInvalidEntry, ext)
		}
		if ext != strings.ToLower(ext) {
			return nil, fmt.Errorf("%w: extension %q must be lowercase", ErrInvalidEntry, ext)
		}
		if strings.TrimSpace(mediaType) == "" {
			return nil, fmt.Errorf("%w: extension %q has an empty media type", ErrInvalidEntry, ext)
		}
		types[ext] = mediaType
	}

	return &Table{types: types}, nil
}

// Lookup returns the media type for the extension of the final segment of
// name. The match is case-insensitive. Unknown or missing extensions yield
// OctetStream, and so do hidden files such as ".html", whose only dot
// starts the name.
func (t *Table) Lookup(name string) string {
	if t == nil {
		return OctetStream
	}
	if mediaType, ok := t.types[strings.ToLower(extension(name))]; ok {
		return mediaType
	}
	return OctetStream
}

func extension(name string) string {
	base := name[strings.LastIndexByte(name, '/')+1:]
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return ""
	}
	return base[dot:]
}

// Len reports the number of extensions in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.types)
}
