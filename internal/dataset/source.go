// Package dataset locates and fetches clue datasets and turns them into
// header-first rows for normalization.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Format names a dataset encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatDuckDB Format = "duckdb"
)

// ErrUnknownFormat is returned when a dataset format is not supported.
var ErrUnknownFormat = errors.New("unknown dataset format")

// FetchError reports a dataset that could not be read or downloaded.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch dataset %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Source yields the rows of one dataset, header first.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
	Describe() string
}

// HTTPDoer is the subset of *http.Client used for remote datasets.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Spec selects a dataset.
type Spec struct {
	Location string
	// Format is inferred from the location extension when empty.
	Format string
	// Name picks an imported dataset inside a DuckDB store.
	Name string
}

// Option customizes Open.
type Option func(*options)

type options struct {
	client HTTPDoer
}

// WithHTTPClient sets the client used for http(s) locations.
func WithHTTPClient(client HTTPDoer) Option {
	return func(o *options) {
		o.client = client
	}
}

// Open returns the source for spec without reading it.
func Open(spec Spec, opts ...Option) (Source, error) {
	o := options{client: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}
	location := strings.TrimSpace(spec.Location)
	if location == "" {
		return nil, errors.New("dataset location is required")
	}
	format, err := ResolveFormat(spec.Format, location)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return &textSource{location: location, client: o.client}, nil
	case FormatJSON:
		return &jsonSource{location: location, client: o.client}, nil
	case FormatDuckDB:
		if IsURL(location) {
			return nil, fmt.Errorf("duckdb datasets must be local files: %s", location)
		}
		return &duckdbSource{path: location, name: spec.Name}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// ResolveFormat returns the explicit format, or infers one from the
// location extension. Unrecognized extensions are read as delimited text.
func ResolveFormat(explicit, location string) (Format, error) {
	explicit = strings.ToLower(strings.TrimSpace(explicit))
	if explicit != "" {
		switch Format(explicit) {
		case FormatCSV, FormatJSON, FormatDuckDB:
			return Format(explicit), nil
		}
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, explicit)
	}
	path := location
	if IsURL(location) {
		if idx := strings.IndexAny(path, "?#"); idx >= 0 {
			path = path[:idx]
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return FormatJSON, nil
	case ".duckdb", ".db":
		return FormatDuckDB, nil
	default:
		return FormatCSV, nil
	}
}

// IsURL reports whether a location is fetched over HTTP.
func IsURL(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Locate joins a base (directory or URL) and a fixed file name.
func Locate(base, file string) string {
	if IsURL(base) {
		return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return filepath.Join(base, file)
}
