package salescrub

import (
	"fmt"
	"time"
)

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, cs := range s.Columns {
		out[i] = cs.Name
	}
	return out
}

// Kind enumerates supported logical types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

// Numeric reports whether the kind holds numbers.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	}
	return "invalid"
}

// Column is a typed, nullable column abstraction. Implementations live in
// this package; callers assert to the concrete *XxxColumn types for typed
// access.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)

	rename(name string) Column
	take(rows []int) Column
	appendNull()
}

// cells holds the values and null mask shared by every column kind.
type cells[T any] struct {
	vals  []T
	nulls []bool
}

func newCells[T any](n int) cells[T] {
	return cells[T]{vals: make([]T, n), nulls: make([]bool, n)}
}

func (c *cells[T]) Len() int        { return len(c.vals) }
func (c *cells[T]) IsNull(i int) bool { return c.nulls[i] }

func (c *cells[T]) SetNull(i int) {
	var zero T
	c.vals[i] = zero
	c.nulls[i] = true
}

func (c *cells[T]) Get(i int) (T, bool) { return c.vals[i], !c.nulls[i] }

func (c *cells[T]) Set(i int, v T) {
	c.vals[i] = v
	c.nulls[i] = false
}

func (c *cells[T]) appendNull() {
	var zero T
	c.vals = append(c.vals, zero)
	c.nulls = append(c.nulls, true)
}

func (c *cells[T]) Append(v T) {
	c.vals = append(c.vals, v)
	c.nulls = append(c.nulls, false)
}

func (c cells[T]) taken(rows []int) cells[T] {
	out := newCells[T](len(rows))
	for i, r := range rows {
		out.vals[i] = c.vals[r]
		out.nulls[i] = c.nulls[r]
	}
	return out
}

type BoolColumn struct {
	name string
	cells[bool]
}

func NewBoolColumn(name string, n int) *BoolColumn {
	return &BoolColumn{name: name, cells: newCells[bool](n)}
}
func (c *BoolColumn) Name() string { return c.name }
func (c *BoolColumn) Kind() Kind   { return KindBool }
func (c *BoolColumn) rename(name string) Column {
	cp := *c
	cp.name = name
	return &cp
}
func (c *BoolColumn) take(rows []int) Column {
	return &BoolColumn{name: c.name, cells: c.cells.taken(rows)}
}

type IntColumn struct {
	name string
	cells[int64]
}

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{name: name, cells: newCells[int64](n)}
}
func (c *IntColumn) Name() string { return c.name }
func (c *IntColumn) Kind() Kind   { return KindInt }
func (c *IntColumn) rename(name string) Column {
	cp := *c
	cp.name = name
	return &cp
}
func (c *IntColumn) take(rows []int) Column {
	return &IntColumn{name: c.name, cells: c.cells.taken(rows)}
}

type FloatColumn struct {
	name string
	cells[float64]
}

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{name: name, cells: newCells[float64](n)}
}
func (c *FloatColumn) Name() string { return c.name }
func (c *FloatColumn) Kind() Kind   { return KindFloat }
func (c *FloatColumn) rename(name string) Column {
	cp := *c
	cp.name = name
	return &cp
}
func (c *FloatColumn) take(rows []int) Column {
	return &FloatColumn{name: c.name, cells: c.cells.taken(rows)}
}

type StringColumn struct {
	name string
	cells[string]
}

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{name: name, cells: newCells[string](n)}
}
func (c *StringColumn) Name() string { return c.name }
func (c *StringColumn) Kind() Kind   { return KindString }
func (c *StringColumn) rename(name string) Column {
	cp := *c
	cp.name = name
	return &cp
}
func (c *StringColumn) take(rows []int) Column {
	return &StringColumn{name: c.name, cells: c.cells.taken(rows)}
}

type TimeColumn struct {
	name string
	cells[time.Time]
}

func NewTimeColumn(name string, n int) *TimeColumn {
	return &TimeColumn{name: name, cells: newCells[time.Time](n)}
}
func (c *TimeColumn) Name() string { return c.name }
func (c *TimeColumn) Kind() Kind   { return KindTime }
func (c *TimeColumn) rename(name string) Column {
	cp := *c
	cp.name = name
	return &cp
}
func (c *TimeColumn) take(rows []int) Column {
	return &TimeColumn{name: c.name, cells: c.cells.taken(rows)}
}

// Frame is a columnar container for one tabular dataset: named, typed,
// nullable columns of equal length. Row i across all columns is one record.
// Stages hand whole Frames forward; a Frame is never shared across
// goroutines.
type Frame struct {
	schema Schema
	cols   []Column
	index  map[string]int // name -> col index
	nrows  int
}

func NewFrame(s Schema) *Frame {
	f := &Frame{schema: s, cols: make([]Column, len(s.Columns)), index: make(map[string]int, len(s.Columns))}
	for i, cs := range s.Columns {
		f.cols[i] = newColumn(cs.Name, cs.Type)
		f.index[cs.Name] = i
	}
	return f
}

func newColumn(name string, k Kind) Column {
	switch k {
	case KindBool:
		return NewBoolColumn(name, 0)
	case KindInt:
		return NewIntColumn(name, 0)
	case KindFloat:
		return NewFloatColumn(name, 0)
	case KindString:
		return NewStringColumn(name, 0)
	case KindTime:
		return NewTimeColumn(name, 0)
	default:
		panic("invalid column kind")
	}
}

func (f *Frame) Schema() Schema { return f.schema }
func (f *Frame) Rows() int      { return f.nrows }
func (f *Frame) Cols() int      { return len(f.cols) }

func (f *Frame) ColumnByName(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// AppendNullRow appends a row with all-null values.
func (f *Frame) AppendNullRow() {
	for _, c := range f.cols {
		c.appendNull()
	}
	f.nrows++
}

// WithColumnNames returns a new Frame identical in rows and values with
// columns renamed positionally. Two columns collapsing to the same name is a
// NormalizationConflictError.
func (f *Frame) WithColumnNames(names []string) (*Frame, error) {
	if len(names) != len(f.cols) {
		return nil, fmt.Errorf("rename: have %d columns, got %d names", len(f.cols), len(names))
	}
	out := &Frame{
		schema: Schema{Columns: make([]ColumnSchema, len(f.cols))},
		cols:   make([]Column, len(f.cols)),
		index:  make(map[string]int, len(f.cols)),
		nrows:  f.nrows,
	}
	for i, c := range f.cols {
		name := names[i]
		if prev, dup := out.index[name]; dup {
			return nil, &NormalizationConflictError{
				Name:      name,
				Originals: []string{f.schema.Columns[prev].Name, f.schema.Columns[i].Name},
			}
		}
		cs := f.schema.Columns[i]
		cs.Name = name
		out.schema.Columns[i] = cs
		out.cols[i] = c.rename(name)
		out.index[name] = i
	}
	return out, nil
}

// FilterRows returns a new Frame holding only the rows for which keep returns
// true. The column set is unchanged; row order is preserved.
func (f *Frame) FilterRows(keep func(row int) bool) *Frame {
	rows := make([]int, 0, f.nrows)
	for r := 0; r < f.nrows; r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	out := &Frame{
		schema: f.schema,
		cols:   make([]Column, len(f.cols)),
		index:  make(map[string]int, len(f.cols)),
		nrows:  len(rows),
	}
	for i, c := range f.cols {
		out.cols[i] = c.take(rows)
		out.index[c.Name()] = i
	}
	return out
}

// SetCell sets a single cell value by column name (row must exist). A nil
// value nulls the cell; numeric values are coerced to the column kind.
func (f *Frame) SetCell(row int, name string, v any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	switch col := f.cols[i].(type) {
	case *BoolColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s expects bool", name)
		}
		col.Set(row, b)
	case *IntColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			col.Set(row, int64(t))
		default:
			return fmt.Errorf("column %s expects int/int64", name)
		}
	case *FloatColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return fmt.Errorf("column %s expects float64", name)
		}
	case *StringColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string", name)
		}
		col.Set(row, s)
	case *TimeColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s expects time.Time", name)
		}
		col.Set(row, t)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}
