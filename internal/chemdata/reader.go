package chemdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ParseTable reads one tab separated property table from r. The first
// header column must be CAS and the second Chemical; every later column
// holds numbers. A blank cell means the source does not report that
// value for the compound.
func ParseTable(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrHeader, name, err)
	}
	if len(header) < 3 || header[0] != "CAS" || header[1] != "Chemical" {
		return nil, fmt.Errorf("%w: %s: got %q", ErrHeader, name, header)
	}

	t := &Table{
		name:    name,
		columns: append([]string(nil), header[2:]...),
		colIdx:  make(map[string]int, len(header)-2),
		rows:    make(map[string][]float64),
		names:   make(map[string]string),
	}
	for i, c := range t.columns {
		t.colIdx[c] = i
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("chemdata: %s line %d: %w", name, line, err)
		}
		cas := rec[0]
		if _, dup := t.rows[cas]; dup {
			return nil, fmt.Errorf("%w: %s line %d: %s", ErrDuplicateCAS, name, line, cas)
		}
		vals := make([]float64, len(t.columns))
		for i, cell := range rec[2:] {
			if cell == "" {
				vals[i] = math.NaN()
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: %s line %d column %s: %q", ErrBadCell, name, line, t.columns[i], cell)
			}
			vals[i] = v
		}
		t.rows[cas] = vals
		t.names[cas] = rec[1]
		t.order = append(t.order, cas)
	}
	return t, nil
}
