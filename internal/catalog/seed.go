package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// CSV seed headers
const (
	colName           = "Name"
	colBaseExperience = "Base Experience"
	colHeight         = "Height"
	colWeight         = "Weight"
	colImageURL       = "Image URL"
)

var seedColumns = []string{colName, colBaseExperience, colHeight, colWeight, colImageURL}

// SeedSummary counts what a seed run did
type SeedSummary struct {
	Inserted int
	Skipped  int
}

// SeedFile loads the CSV at path, see Seed
func (s *Store) SeedFile(ctx context.Context, path string) (SeedSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedSummary{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	summary, err := s.Seed(ctx, f)
	if err != nil {
		return summary, fmt.Errorf("seed from %s: %w", path, err)
	}
	log.Printf("[catalog] seeded %d rows from %s (%d already present)", summary.Inserted, path, summary.Skipped)
	return summary, nil
}

// Seed inserts the rows of a CSV stream in one transaction. Empty numeric
// cells are stored as NULL and rows whose name is already present, in the
// table or earlier in the stream, are skipped.
func (s *Store) Seed(ctx context.Context, r io.Reader) (SeedSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return SeedSummary{}, fmt.Errorf("read header: %w", err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return SeedSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SeedSummary{}, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	var summary SeedSummary
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", line, err)
		}

		cell := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := cell(colName)
		values := []any{name}
		for _, col := range []string{colBaseExperience, colHeight, colWeight} {
			v, err := parseOptionalInt(cell(col))
			if err != nil {
				return summary, fmt.Errorf("line %d: %s: %w", line, col, err)
			}
			values = append(values, v)
		}
		values = append(values, cell(colImageURL))

		var existing int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE name = ?", name).Scan(&existing); err != nil {
			return summary, fmt.Errorf("line %d: lookup %q: %w", line, name, err)
		}
		if existing > 0 {
			summary.Skipped++
			continue
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO "+table+" (name, base_experience, height, weight, image_url) VALUES (?, ?, ?, ?, ?)",
			values...); err != nil {
			return summary, fmt.Errorf("line %d: insert %q: %w", line, name, err)
		}
		summary.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("commit seed: %w", err)
	}
	return summary, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range seedColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}
	return index, nil
}

// parseOptionalInt returns nil for an empty cell
func parseOptionalInt(s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}
