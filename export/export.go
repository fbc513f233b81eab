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

// Package export serializes a generated table to Parquet, CSV and JSON.
// The three exporters only read the table, so they are safe to run
// concurrently against the same *dataset.Table.
package export

import (
	"fmt"

	"dtsgen/dataset"
)

// Format represents the supported export formats
type Format int

const (
	FormatParquet Format = iota
	FormatCSV
	FormatJSON
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// Export writes the table to filePath in the given format.
func Export(tbl *dataset.Table, format Format, filePath string) error {
	if tbl == nil || tbl.NumColumns() == 0 {
		return fmt.Errorf("failed to export %s: %w", format, dataset.ErrEmptyData)
	}

	switch format {
	case FormatParquet:
		return ToParquet(tbl, filePath)
	case FormatCSV:
		return ToCSV(tbl, filePath)
	case FormatJSON:
		return ToJSON(tbl, filePath)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
