// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset generates the datetime stress-test table: a fixed set of
// temporal columns with edge-case-rich values, fully determined by a seed
// and a row count.
package dataset

import "fmt"

// Kind identifies the logical type of a column. It is assigned when the
// column is built, so exporters never have to infer types by sampling cell
// values.
type Kind int

const (
	// KindInt represents integer data.
	KindInt Kind = iota
	// KindDate represents a calendar date without a time-of-day component.
	KindDate
	// KindTime represents a time of day without a date component.
	KindTime
	// KindTimestamp represents a date+time value with no UTC offset.
	KindTimestamp
	// KindTimestampTZ represents a date+time value with an explicit UTC offset.
	KindTimestampTZ
	// KindString represents string data.
	KindString
	// KindNull represents a column with no non-null values.
	KindNull
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindTimestamp:
		return "Timestamp"
	case KindTimestampTZ:
		return "TimestampTZ"
	case KindString:
		return "String"
	case KindNull:
		return "Null"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Value is a typed container for a single cell.
//
// Raw holds int64 for KindInt, time.Time for the temporal kinds and string
// for KindString. Temporal cells use the UTC location for KindDate,
// KindTime and KindTimestamp; only KindTimestampTZ cells carry a meaningful
// fixed-offset location. For KindTime cells the date part is a reference
// day and only the clock components are significant.
type Value struct {
	// Raw holds the underlying value. The type depends on the column Kind.
	Raw interface{}

	// IsNull indicates whether this value is null.
	IsNull bool
}

// NewValue creates a non-null Value from a raw value.
func NewValue(raw interface{}) Value {
	return Value{Raw: raw}
}

// NullValue creates a null value.
func NullValue() Value {
	return Value{Raw: nil, IsNull: true}
}

// Column is a named, logically typed cell sequence. All columns of a Table
// hold the same number of cells.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Value
}

// NonNullCount returns the number of non-null cells.
func (c *Column) NonNullCount() int {
	n := 0
	for _, v := range c.Cells {
		if !v.IsNull {
			n++
		}
	}
	return n
}

// Table is the generation result: an ordered set of equal-length columns.
// It is built once by Generate and must not be mutated afterwards, since
// exporters read it concurrently.
type Table struct {
	rows    int
	columns []Column
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Columns returns the columns in generation order. The returned slice is
// the table's backing storage; callers must treat it as read-only.
func (t *Table) Columns() []Column {
	return t.columns
}

// Column returns the column with the given name.
// Returns ErrColumnNotFound if no such column exists.
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.columns {
		if t.columns[i].Name == name {
			return &t.columns[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// Row returns the cells of one row in column order.
// Returns ErrInvalidRow if row is out of range.
func (t *Table) Row(row int) ([]Value, error) {
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	cells := make([]Value, len(t.columns))
	for i := range t.columns {
		cells[i] = t.columns[i].Cells[row]
	}
	return cells, nil
}

func (t *Table) add(c Column) {
	if len(c.Cells) != t.rows {
		panic(fmt.Sprintf("dataset: column %s has %d cells, table has %d rows", c.Name, len(c.Cells), t.rows))
	}
	t.columns = append(t.columns, c)
}
