package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"clueboard/internal/dataset"
	"clueboard/internal/duckdb"
)

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("db", "", "DuckDB file to write")
		name := flags.String("name", "", "Dataset name (default: content fingerprint prefix)")
		format := flags.String("format", "", "Input format: csv|json (default: from the file extension)")
		list := flags.Bool("list", false, "List stored datasets after importing")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*dbPath) == "" || flags.NArg() != 1 {
			fmt.Fprintln(stderr, "import needs --db and exactly one dataset")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		location := flags.Arg(0)
		if !dataset.IsURL(location) {
			abs, err := filepath.Abs(location)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to resolve %s: %v\n", location, err)
				return ExitError
			}
			location = abs
		}
		resolved, err := dataset.ResolveFormat(*format, location)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if resolved == dataset.FormatDuckDB {
			fmt.Fprintln(stderr, "import reads csv or json datasets")
			return ExitUsage
		}

		ctx := context.Background()
		src, err := dataset.Open(dataset.Spec{Location: location, Format: string(resolved)})
		if err != nil {
			fmt.Fprintf(stderr, "Could not open the dataset: %v\n", err)
			return ExitError
		}
		rows, err := src.Rows(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Could not load the dataset: %v\n", err)
			return ExitError
		}

		db, err := duckdb.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Could not open %s: %v\n", *dbPath, err)
			return ExitError
		}
		defer db.Close()

		result, err := duckdb.ImportRows(ctx, db, duckdb.Import{
			Name:   *name,
			Source: src.Describe(),
			Rows:   rows,
		})
		if err != nil {
			if errors.Is(err, duckdb.ErrEmptyDataset) {
				fmt.Fprintf(stderr, "Nothing to import: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "Import failed: %v\n", err)
			}
			return ExitError
		}
		if result.Existing {
			fmt.Fprintf(stdout, "Dataset already stored (%s); nothing imported.\n", result.Key[:12])
		} else {
			fmt.Fprintf(stdout, "Imported %d clues into %s (dataset %s, skipped %d blank rows).\n",
				result.Rows, *dbPath, result.DatasetID, result.Skipped)
		}

		if *list {
			stored, err := duckdb.Datasets(ctx, db)
			if err != nil {
				fmt.Fprintf(stderr, "Could not list datasets: %v\n", err)
				return ExitError
			}
			for _, ds := range stored {
				fmt.Fprintf(stdout, "  %s  %-20s %6d clues %4d categories  %s\n",
					ds.ImportedAt.Format("2006-01-02 15:04"), ds.Name, ds.Clues, ds.Categories, ds.ID)
			}
		}
		return ExitOK
	}
}
