package Storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// EncodeTable renders a table as CSV, header first.
func EncodeTable(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(t.Header) > 0 {
		if err := w.Write(t.Header); err != nil {
			return nil, fmt.Errorf("encoding table header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encoding table row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeTable parses CSV bytes into a table. Ragged rows are tolerated; rows
// that fail to parse at all are skipped rather than failing the whole load.
func DecodeTable(data []byte) (Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var t Table
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if first {
			t.Header = row
			first = false
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
