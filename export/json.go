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
	"encoding/json"
	"fmt"
	"os"

	"dtsgen/dataset"
)

// ToJSON exports the table to a JSON file as a list of records. Map
// marshaling sorts the keys, so the output is stable across runs even
// though the in-memory column order is not alphabetical.
func ToJSON(tbl *dataset.Table, filePath string) error {
	// Create the output file
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	// Collect all rows into a slice of maps
	columns := tbl.Columns()
	records := make([]map[string]interface{}, 0, tbl.NumRows())
	for row := 0; row < tbl.NumRows(); row++ {
		record := make(map[string]interface{}, len(columns))
		for i := range columns {
			record[columns[i].Name] = typedValue(columns[i].Kind, columns[i].Cells[row])
		}
		records = append(records, record)
	}

	// Encode to JSON with indentation
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
