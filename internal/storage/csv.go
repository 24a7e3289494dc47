// Package storage holds the bank sinks that do not need a database: CSV files
// on disk and an in-memory store.
package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

var ErrUnexpectedHeader = errors.New("unexpected csv header")

// CSVWriter writes every bank to <root>/<subtopic file>.
type CSVWriter struct {
	root string
}

// NewCSVWriter creates a CSVWriter rooted at root.
func NewCSVWriter(root string) *CSVWriter {
	return &CSVWriter{root: root}
}

// Location returns the file a bank for s is written to.
func (w *CSVWriter) Location(s entities.Subtopic) string {
	return filepath.Join(w.root, filepath.FromSlash(s.File))
}

// Save writes the header and every row of bank, creating parent directories
// as needed. An existing file is overwritten.
func (w *CSVWriter) Save(ctx context.Context, _ entities.Run, bank entities.Bank) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := w.Location(bank.Subtopic)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeBank(f, bank.Rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}

func writeBank(out io.Writer, rows []entities.Row) error {
	cw := csv.NewWriter(out)
	cw.UseCRLF = true

	if err := cw.Write(entities.Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadBank parses a file written by CSVWriter.
func ReadBank(path string) ([]entities.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(entities.Header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 || !slices.Equal(records[0], entities.Header) {
		return nil, fmt.Errorf("%w in %s", ErrUnexpectedHeader, path)
	}

	rows := make([]entities.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := entities.RowFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
