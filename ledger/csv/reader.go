package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-ledger/ledger"
)

// Reader streams transaction records from comma-separated input.
//
// The first row must be a header naming at least the type, client, and tx
// columns; columns may appear in any order, and the amount column may be
// omitted entirely for inputs that carry no deposits or withdrawals.
// Fields are whitespace-trimmed, and rows may leave the amount empty.
type Reader struct {
	reader  *csv.Reader
	columns map[string]int
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader) *Reader {
	reader := csv.NewReader(r)
	// Dispute-class rows often omit the trailing amount field.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return &Reader{reader: reader}
}

// Read returns the next record, or io.EOF after the last row.
//
// Malformed rows produce a ledger.DomainError naming the offending field;
// transport-level read failures are returned as-is.
func (r *Reader) Read() (ledger.Record, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return ledger.Record{}, err
		}
	}

	row, err := r.reader.Read()
	if err != nil {
		return ledger.Record{}, err
	}

	kind, err := ledger.ParseKind(r.field(row, "type"))
	if err != nil {
		return ledger.Record{}, err
	}

	client, err := strconv.ParseUint(r.field(row, "client"), 10, 16)
	if err != nil {
		return ledger.Record{}, ledger.NewDomainError(ledger.ErrorInvalidInput, "client", "client is not a valid unsigned 16-bit integer")
	}

	tx, err := strconv.ParseUint(r.field(row, "tx"), 10, 32)
	if err != nil {
		return ledger.Record{}, ledger.NewDomainError(ledger.ErrorInvalidInput, "tx", "tx is not a valid unsigned 32-bit integer")
	}

	record := ledger.Record{
		Kind:   kind,
		Client: ledger.ClientID(client),
		TX:     ledger.TransactionID(tx),
	}

	if raw := r.field(row, "amount"); raw != "" {
		amount, err := ledger.ParseAmount(raw)
		if err != nil {
			return ledger.Record{}, err
		}

		record.Amount = &amount
	}

	return record, nil
}

func (r *Reader) readHeader() error {
	header, err := r.reader.Read()
	if err != nil {
		return err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := columns[required]; !ok {
			return ledger.NewDomainError(ledger.ErrorInvalidInput, required, fmt.Sprintf("header is missing the %s column", required))
		}
	}

	r.columns = columns

	return nil
}

func (r *Reader) field(row []string, name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}
