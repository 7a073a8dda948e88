// Package csvkit provides the CSV stream plumbing for csvscrub: a
// file-backed record reader that tolerates a UTF-8 BOM and variable
// field counts, and a record writer that surfaces deferred encoding
// errors on flush.
package csvkit

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Reader streams records from a CSV file. Records are yielded as-is:
// no field-count enforcement, no trimming. Close releases the file.
type Reader struct {
	f    *os.File
	cr   *csv.Reader
	path string
}

// Open opens path for record streaming. A leading UTF-8 BOM, commonly
// added by Windows tools, is skipped before any parsing so that header
// names resolve cleanly.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	cr := csv.NewReader(newBOMSkipper(f))
	// Input files are allowed ragged rows; the filter preserves each
	// record's own arity.
	cr.FieldsPerRecord = -1

	return &Reader{f: f, cr: cr, path: path}, nil
}

// ReadHeader reads the mandatory first row. An empty file is an error:
// without a header there is no column to resolve.
func (r *Reader) ReadHeader() ([]string, error) {
	header, err := r.cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header row", r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", r.path, err)
	}
	return header, nil
}

// Read returns the next record, or io.EOF at end of file.
func (r *Reader) Read() ([]string, error) {
	return r.cr.Read()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// bomSkipper discards a UTF-8 BOM at the start of the stream, if present.
type bomSkipper struct {
	br      *bufio.Reader
	checked bool
}

func newBOMSkipper(r io.Reader) *bomSkipper {
	return &bomSkipper{br: bufio.NewReader(r)}
}

func (b *bomSkipper) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		if lead, err := b.br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
			if _, err := b.br.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return b.br.Read(p)
}

// Writer writes CSV records to an underlying stream. encoding/csv
// buffers internally, so errors may surface only on Flush; callers must
// check it before treating the output as complete.
type Writer struct {
	cw *csv.Writer
}

// NewWriter returns a Writer emitting standard CSV to w. The output
// never carries a BOM regardless of the input.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// Write appends one record to the output.
func (w *Writer) Write(record []string) error {
	return w.cw.Write(record)
}

// Flush writes any buffered records to the underlying stream and
// returns the first error seen during writing, if any.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
