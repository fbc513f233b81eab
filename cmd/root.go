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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dtsgen/dataset"
	"dtsgen/export"
	"dtsgen/internal/log"
)

var verbose bool

// outputs maps each format to its fixed location under the working
// directory. Downstream test suites load the files from these paths, so
// they are not configurable.
var outputs = []struct {
	format export.Format
	path   string
}{
	{export.FormatCSV, filepath.Join("csv", "datetime-stress-tests.csv")},
	{export.FormatJSON, filepath.Join("json", "datetime-stress-tests.json")},
	{export.FormatParquet, filepath.Join("parquet", "datetime-stress-tests.parquet")},
}

var rootCmd = &cobra.Command{
	Use:   "dtsgen",
	Short: "Generate datetime stress-test fixtures",
	Long: `dtsgen generates a table of datetime edge cases (timezone offsets,
leap years, epoch boundaries, sub-second precision, nulls and ambiguous
string formats) and writes it to CSV, JSON and Parquet below the current
directory.

The output is fully determined by a fixed seed, so regenerated files are
byte-identical and safe to diff against committed fixtures.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)

	logger.Infof("Generating datetime stress test data (%d rows, seed %d)", dataset.DefaultRows, dataset.DefaultSeed)
	tbl := dataset.Generate(dataset.DefaultSeed, dataset.DefaultRows)
	logger.Infof("Generated %d rows x %d columns", tbl.NumRows(), tbl.NumColumns())

	for _, out := range outputs {
		if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// The exporters only read the table, so the three files are written
	// concurrently.
	grp := &errgroup.Group{}
	for _, out := range outputs {
		grp.Go(func() error {
			if err := export.Export(tbl, out.format, out.path); err != nil {
				return err
			}
			logger.Infof("Saved: %s", out.path)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	logger.Info("Column summary:")
	for _, c := range tbl.Columns() {
		logger.Infof("  %s: %d/%d non-null, kind: %s", c.Name, c.NonNullCount(), tbl.NumRows(), c.Kind)
	}

	return nil
}
