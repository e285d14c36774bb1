package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clueboard/internal/clue"
)

// ErrDatasetNotFound is returned when no stored dataset matches a lookup.
var ErrDatasetNotFound = errors.New("dataset not found")

// Dataset summarizes one stored dataset.
type Dataset struct {
	ID         string
	Name       string
	ImportedAt time.Time
	Clues      int
	Categories int
}

// Datasets lists stored datasets, newest first.
func Datasets(ctx context.Context, db *sql.DB) ([]Dataset, error) {
	rows, err := db.QueryContext(ctx, `SELECT CAST(dataset_id AS VARCHAR), name, imported_at, clue_count, category_count
FROM v_dataset_stats
ORDER BY imported_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()
	var out []Dataset
	for rows.Next() {
		var d Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.ImportedAt, &d.Clues, &d.Categories); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReadRows returns a stored dataset as header-first rows using clue.Columns
// as the header. An empty name selects the most recent import; otherwise the
// most recent import with that name is used.
func ReadRows(ctx context.Context, db *sql.DB, name string) ([][]string, error) {
	id, err := lookupDataset(ctx, db, name)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT category, value, question, answer, round
FROM clues
WHERE dataset_id = CAST(? AS UUID)
ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("read clues: %w", err)
	}
	defer rows.Close()
	out := [][]string{append([]string(nil), clue.Columns...)}
	for rows.Next() {
		fields := make([]sql.NullString, len(clue.Columns))
		dest := make([]any, len(fields))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan clue: %w", err)
		}
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = field.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func lookupDataset(ctx context.Context, db *sql.DB, name string) (string, error) {
	query := "SELECT CAST(dataset_id AS VARCHAR) FROM datasets ORDER BY imported_at DESC LIMIT 1"
	args := []any{}
	if name != "" {
		query = "SELECT CAST(dataset_id AS VARCHAR) FROM datasets WHERE name = ? ORDER BY imported_at DESC LIMIT 1"
		args = append(args, name)
	}
	var id string
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if name == "" {
				return "", ErrDatasetNotFound
			}
			return "", fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
		}
		return "", fmt.Errorf("lookup dataset: %w", err)
	}
	return id, nil
}
