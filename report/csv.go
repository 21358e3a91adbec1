// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes records with a header of Size followed by every field
// present in at least one record. Absent fields are written as "".
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	cols := columns(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{SizeColumn}, cols...)); err != nil {
		return err
	}

	line := make([]string, len(cols)+1)
	for _, r := range records {
		line[0] = r.Size
		for i, name := range cols {
			line[i+1] = ""
			if v, ok := r.Fields[name]; ok {
				line[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV. Empty cells are left out of
// Record.Fields. The first column must be Size.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if header[0] != SizeColumn {
		return nil, fmt.Errorf("%w: first column %q, want %q", ErrMalformedCSV, header[0], SizeColumn)
	}

	var out []Record
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}

		rec := Record{Size: fields[0], Fields: make(map[string]float64, len(header)-1)}
		for i := 1; i < len(fields); i++ {
			if fields[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ErrMalformedCSV, line, header[i], err)
			}
			rec.Fields[header[i]] = v
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}

	return out, nil
}
