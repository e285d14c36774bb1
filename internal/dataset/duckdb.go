package dataset

import (
	"context"
	"os"

	"clueboard/internal/duckdb"
)

type duckdbSource struct {
	path string
	name string
}

func (s *duckdbSource) Rows(ctx context.Context) ([][]string, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, &FetchError{Location: s.path, Err: err}
	}
	db, err := duckdb.Open(ctx, s.path)
	if err != nil {
		return nil, &FetchError{Location: s.path, Err: err}
	}
	defer db.Close()
	rows, err := duckdb.ReadRows(ctx, db, s.name)
	if err != nil {
		return nil, &FetchError{Location: s.path, Err: err}
	}
	return rows, nil
}

func (s *duckdbSource) Describe() string {
	if s.name == "" {
		return "duckdb " + s.path
	}
	return "duckdb " + s.path + " (" + s.name + ")"
}
