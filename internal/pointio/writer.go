package pointio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/pointexpand/internal/expand"
	"github.com/banshee-data/pointexpand/internal/fsutil"
)

// ErrSinkUnavailable is returned when the output file cannot be opened.
var ErrSinkUnavailable = errors.New("cannot open output file")

// coordPrecision is the number of decimals written for every coordinate.
const coordPrecision = 3

// Writer serialises rows as label,X,Y,Z CSV records.
type Writer struct {
	csv   *csv.Writer
	count int
}

// NewWriter returns a Writer that writes to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

func record(row expand.Row) []string {
	return []string{
		row.Label,
		strconv.FormatFloat(row.Pos.X, 'f', coordPrecision, 64),
		strconv.FormatFloat(row.Pos.Y, 'f', coordPrecision, 64),
		strconv.FormatFloat(row.Pos.Z, 'f', coordPrecision, 64),
	}
}

// FormatRow returns the CSV record for row without a trailing newline.
func FormatRow(row expand.Row) string {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	_ = cw.Write(record(row))
	cw.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// Write buffers one row.
func (w *Writer) Write(row expand.Row) error {
	if err := w.csv.Write(record(row)); err != nil {
		return fmt.Errorf("failed to write row %q: %w", row.Label, err)
	}
	w.count++
	return nil
}

// WriteAll writes rows in order and flushes.
func (w *Writer) WriteAll(rows []expand.Row) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	return nil
}

// Count returns the number of rows written so far.
func (w *Writer) Count() int { return w.count }

// WriteRowsFile creates path on fsys and writes every row to it. Failure to
// create the file wraps ErrSinkUnavailable.
func WriteRowsFile(fsys fsutil.FileSystem, path string, rows []expand.Row) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrSinkUnavailable, path, err)
	}
	if err := NewWriter(f).WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
