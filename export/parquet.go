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

package export

import (
	"fmt"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"dtsgen/dataset"
)

// ToParquet exports the table to a Parquet file
func ToParquet(tbl *dataset.Table, filePath string) error {
	at := buildArrowTable(tbl)
	defer at.Release()

	// Create the output file
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	// Create Parquet writer properties
	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(at.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	if err := writer.WriteTable(at, at.NumRows()); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	// Close writes the file footer, so its error cannot be dropped.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return nil
}

// arrowType maps a column kind to its Arrow type. All temporal kinds use
// microsecond precision; the tz-aware kind is stored normalized to UTC.
func arrowType(kind dataset.Kind) arrow.DataType {
	switch kind {
	case dataset.KindInt:
		return arrow.PrimitiveTypes.Int64
	case dataset.KindDate:
		return arrow.FixedWidthTypes.Date32
	case dataset.KindTime:
		return arrow.FixedWidthTypes.Time64us
	case dataset.KindTimestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond}
	case dataset.KindTimestampTZ:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}
	case dataset.KindString:
		return arrow.BinaryTypes.String
	default:
		return arrow.Null
	}
}

func arrowSchema(tbl *dataset.Table) *arrow.Schema {
	columns := tbl.Columns()
	fields := make([]arrow.Field, len(columns))
	for i := range columns {
		fields[i] = arrow.Field{
			Name:     columns[i].Name,
			Type:     arrowType(columns[i].Kind),
			Nullable: true,
		}
	}
	return arrow.NewSchema(fields, nil)
}

// appendCell appends one cell to the builder for its column's Arrow type.
func appendCell(b array.Builder, v dataset.Value) {
	if v.IsNull {
		b.AppendNull()
		return
	}

	switch b := b.(type) {
	case *array.Int64Builder:
		b.Append(v.Raw.(int64))

	case *array.Date32Builder:
		b.Append(arrow.Date32FromTime(v.Raw.(time.Time)))

	case *array.Time64Builder:
		t := v.Raw.(time.Time)
		h, m, s := t.Clock()
		b.Append(arrow.Time64(int64(h*3600+m*60+s)*1000000 + int64(t.Nanosecond()/1000)))

	case *array.TimestampBuilder:
		// UnixMicro converts tz-aware values to their UTC instant and is a
		// plain reinterpretation for the naive kinds, whose location is
		// already UTC.
		b.Append(arrow.Timestamp(v.Raw.(time.Time).UnixMicro()))

	case *array.StringBuilder:
		b.Append(v.Raw.(string))

	default:
		b.AppendNull()
	}
}

// buildArrowTable converts the generated table into an Arrow table with one
// record batch.
func buildArrowTable(tbl *dataset.Table) arrow.Table {
	pool := memory.NewGoAllocator()
	schema := arrowSchema(tbl)

	columns := tbl.Columns()
	arrays := make([]arrow.Array, len(columns))
	for i := range columns {
		builder := array.NewBuilder(pool, schema.Field(i).Type)
		for _, v := range columns[i].Cells {
			appendCell(builder, v)
		}
		arrays[i] = builder.NewArray()
		builder.Release()
	}

	rec := array.NewRecord(schema, arrays, int64(tbl.NumRows()))
	for _, a := range arrays {
		a.Release()
	}
	defer rec.Release()

	return array.NewTableFromRecords(schema, []arrow.Record{rec})
}
