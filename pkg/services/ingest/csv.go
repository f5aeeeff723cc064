// Package ingest turns uploaded tabular files into read-only datasets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// missingTokens are raw cell values treated as missing in addition to the
// empty string.
var missingTokens = map[string]bool{
	"na": true, "n/a": true, "null": true, "none": true, "-": true,
}

var booleanTokens = map[string]bool{
	"yes": true, "no": true, "true": true, "false": true, "1": true, "0": true,
}

var datetimeLayouts = []string{
	"2006-01-02", "2006-01-02 15:04:05", "02/01/2006", "01/02/2006", time.RFC3339,
}

// ReadCSV parses a CSV stream into a Dataset. The first record is the header.
// Structural problems (no header, duplicate column names, zero data rows) are
// fatal and wrapped in ErrMalformedDataset.
func ReadCSV(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", domain.ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrMalformedDataset, err)
	}

	seen := make(map[string]bool, len(header))
	columns := make([]domain.Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column name %q", domain.ErrMalformedDataset, name)
		}
		seen[name] = true
		columns[i] = domain.Column{Name: name}
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row %d: %v", domain.ErrMalformedDataset, rows+2, err)
		}
		for i := range columns {
			var raw string
			if i < len(record) {
				raw = strings.TrimSpace(record[i])
			}
			columns[i].Values = append(columns[i].Values, parseValue(raw))
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrMalformedDataset)
	}

	for i := range columns {
		columns[i].Kind = sniffKind(columns[i].Values)
	}
	return &domain.Dataset{Columns: columns}, nil
}

func parseValue(raw string) domain.Value {
	if raw == "" || missingTokens[strings.ToLower(raw)] {
		return domain.Value{Missing: true}
	}
	v := domain.Value{Raw: raw}
	cleaned := strings.ReplaceAll(raw, ",", "")
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		v.Number = n
		v.Numeric = true
	}
	return v
}

// sniffKind classifies a column from its non-missing values. Boolean-like
// wins over numeric so 0/1 flag columns feed rate KPIs instead of means.
func sniffKind(values []domain.Value) domain.ColumnKind {
	total, numeric, boolean, datetime := 0, 0, 0, 0
	distinct := make(map[string]bool)

	for _, v := range values {
		if v.Missing {
			continue
		}
		total++
		lower := strings.ToLower(v.Raw)
		distinct[lower] = true
		if booleanTokens[lower] {
			boolean++
		}
		if v.Numeric {
			numeric++
		}
		if isDatetime(v.Raw) {
			datetime++
		}
	}
	if total == 0 {
		return domain.ColumnText
	}

	switch {
	case boolean == total && len(distinct) <= 3:
		return domain.ColumnBoolean
	case datetime == total:
		return domain.ColumnDatetime
	case numeric == total:
		return domain.ColumnNumeric
	// Low cardinality relative to row count marks a grouping column.
	case len(distinct) <= 20 && float64(len(distinct))/float64(total) <= 0.5:
		return domain.ColumnCategorical
	default:
		return domain.ColumnText
	}
}

func isDatetime(raw string) bool {
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	return false
}
