package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"clueboard/internal/clue"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// ErrEmptyDataset is returned when an import has no data rows.
var ErrEmptyDataset = errors.New("dataset has no data rows")

// Import describes one dataset to store.
type Import struct {
	Name   string
	Source string
	// Rows is header-first, as produced by the tabular parser.
	Rows [][]string
	// At is the import timestamp; zero means now.
	At time.Time
}

// ImportResult reports what an import stored.
type ImportResult struct {
	DatasetID string
	Key       string
	Rows      int
	Skipped   int
	// Existing is true when identical content was already stored and
	// nothing was written.
	Existing bool
}

// ImportRows projects rows onto the clue columns and stores them as a new
// dataset. Rows with every clue column blank are skipped.
func ImportRows(ctx context.Context, db *sql.DB, in Import) (ImportResult, error) {
	if db == nil {
		return ImportResult{}, errors.New("duckdb: db is nil")
	}
	projected, skipped := project(in.Rows)
	if len(projected) == 0 {
		return ImportResult{}, ErrEmptyDataset
	}
	key, err := FingerprintRows(projected)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fingerprint dataset: %w", err)
	}
	result := ImportResult{Key: key, Rows: len(projected), Skipped: skipped}

	var existing string
	err = db.QueryRowContext(ctx, "SELECT CAST(dataset_id AS VARCHAR) FROM datasets WHERE dataset_key = ?", key).Scan(&existing)
	switch {
	case err == nil:
		result.DatasetID = existing
		result.Existing = true
		return result, nil
	case !errors.Is(err, sql.ErrNoRows):
		return ImportResult{}, fmt.Errorf("lookup dataset: %w", err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = key[:12]
	}
	at := in.At
	if at.IsZero() {
		at = time.Now()
	}
	id := uuid.New()
	result.DatasetID = id.String()

	conn, err := db.Conn(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	defer conn.Close()
	if _, err := conn.ExecContext(ctx, "BEGIN"); err != nil {
		return ImportResult{}, err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		_, _ = conn.ExecContext(context.Background(), "ROLLBACK")
	}()

	if _, err := conn.ExecContext(ctx,
		"INSERT INTO datasets (dataset_id, dataset_key, name, source, row_count, imported_at) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING",
		result.DatasetID, key, name, in.Source, int64(len(projected)), at.UTC(),
	); err != nil {
		return ImportResult{}, fmt.Errorf("insert dataset: %w", err)
	}

	appender, err := newClueAppender(conn)
	if err != nil {
		return ImportResult{}, err
	}
	defer func() {
		if appender != nil {
			_ = appender.Close()
		}
	}()
	datasetUUID := duckdbdriver.UUID(id)
	for i, row := range projected {
		if err := appender.AppendRow(datasetUUID, int64(i), row[0], row[1], row[2], row[3], row[4]); err != nil {
			return ImportResult{}, fmt.Errorf("append clue %d: %w", i, err)
		}
	}
	if err := appender.Close(); err != nil {
		return ImportResult{}, fmt.Errorf("flush clues: %w", err)
	}
	appender = nil

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return ImportResult{}, err
	}
	committed = true
	return result, nil
}

// project maps header-first rows onto clue.Columns order.
func project(rows [][]string) ([][]string, int) {
	if len(rows) < 2 {
		return nil, 0
	}
	header := clue.NewHeader(rows[0])
	out := make([][]string, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		fields := make([]string, len(clue.Columns))
		blank := true
		for i, name := range clue.Columns {
			fields[i] = header.Field(row, name)
			if strings.TrimSpace(fields[i]) != "" {
				blank = false
			}
		}
		if blank {
			skipped++
			continue
		}
		out = append(out, fields)
	}
	return out, skipped
}

func newClueAppender(conn *sql.Conn) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", "clues")
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, errors.New("duckdb appender initialization failed")
	}
	return appender, nil
}
