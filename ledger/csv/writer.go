package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/LerianStudio/lib-ledger/ledger"
)

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders account snapshots as comma-separated output.
type Writer struct {
	writer        *csv.Writer
	headerWritten bool
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: csv.NewWriter(w)}
}

// Write appends one account row, emitting the header before the first row.
func (w *Writer) Write(view ledger.AccountView) error {
	if !w.headerWritten {
		if err := w.writer.Write(snapshotHeader); err != nil {
			return err
		}

		w.headerWritten = true
	}

	return w.writer.Write([]string{
		strconv.FormatUint(uint64(view.Client), 10),
		view.Available.String(),
		view.Held.String(),
		view.Total.String(),
		strconv.FormatBool(view.Locked),
	})
}

// Flush writes buffered rows to the underlying io.Writer and reports any
// error that occurred during writing.
func (w *Writer) Flush() error {
	w.writer.Flush()

	return w.writer.Error()
}
