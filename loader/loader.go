// Package loader normalizes raw JSON or XML feed bytes into a uniform
// sequence of records. Parsing is the only fatal stage of a validation
// run: a syntax error aborts the whole feed, everything downstream
// degrades to per-record diagnostics.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/deepakgargct/productfeedreview/record"
)

// Format is the declared logical format of a feed.
type Format string

// Supported feed formats.
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ErrUnsupportedFormat is returned for formats other than json or xml.
var ErrUnsupportedFormat = errors.New("unsupported feed format")

// ParseError is a fatal feed-level failure: the bytes are not
// syntactically valid for the declared format. It carries the underlying
// decoder error; no partial records are recovered.
type ParseError struct {
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s feed: %v", e.Format, e.Err)
}

// Unwrap returns the underlying syntax error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatFromPath derives the feed format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".xml":
		return FormatXML, true
	default:
		return "", false
	}
}

// Load decodes raw feed bytes in the declared format and returns the
// normalized records in input order.
func Load(data []byte, format Format) ([]record.Record, error) {
	switch format {
	case FormatJSON:
		return loadJSON(data)
	case FormatXML:
		return loadXML(data)
	default:
		return nil, fmt.Errorf("%w: %q (expected json or xml)", ErrUnsupportedFormat, string(format))
	}
}
