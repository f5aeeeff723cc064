package domain

// ColumnKind classifies the values a column holds. Kinds are sniffed once at
// ingest time and never change afterwards.
type ColumnKind string

const (
	ColumnNumeric     ColumnKind = "numeric"
	ColumnCategorical ColumnKind = "categorical"
	ColumnBoolean     ColumnKind = "boolean"
	ColumnDatetime    ColumnKind = "datetime"
	ColumnText        ColumnKind = "text"
)

// Value is a single cell. Raw keeps the original string form; Number is only
// meaningful when Numeric is true. A missing cell has Missing set and nothing
// else.
type Value struct {
	Raw     string
	Number  float64
	Numeric bool
	Missing bool
}

// Column is an ordered list of values under a unique name.
type Column struct {
	Name   string
	Kind   ColumnKind
	Values []Value
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.Missing {
			n++
		}
	}
	return n
}

// Numbers returns the parsed numeric values of all non-missing cells.
func (c *Column) Numbers() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.Missing && v.Numeric {
			out = append(out, v.Number)
		}
	}
	return out
}

// Dataset is an ordered collection of named columns. It is passed by
// reference through the whole pipeline and treated as read-only by every
// component; stages that need to change values (cleaning) return a copy.
type Dataset struct {
	Columns []Column
}

// RowCount returns the number of rows, taken from the first column.
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Column returns the column with the given name, or nil.
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns the column names in declaration order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy of the dataset. Cleaning works on a clone so the
// original upload stays untouched.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{Columns: make([]Column, len(d.Columns))}
	for i, c := range d.Columns {
		values := make([]Value, len(c.Values))
		copy(values, c.Values)
		out.Columns[i] = Column{Name: c.Name, Kind: c.Kind, Values: values}
	}
	return out
}
