package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtsgen/dataset"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	return dataset.Generate(dataset.DefaultSeed, dataset.DefaultRows)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func readJSON(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &records))
	return records
}

func headerIndex(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %s not in header", name)
	return -1
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "parquet", FormatParquet.String())
	assert.Equal(t, "csv", FormatCSV.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown(9)", Format(9).String())
}

func TestExportRejectsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	err := Export(nil, FormatCSV, filepath.Join(dir, "out.csv"))
	assert.ErrorIs(t, err, dataset.ErrEmptyData)

	err = Export(&dataset.Table{}, FormatJSON, filepath.Join(dir, "out.json"))
	assert.ErrorIs(t, err, dataset.ErrEmptyData)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	err := Export(testTable(t), Format(42), filepath.Join(t.TempDir(), "out"))
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestExportFailsOnUnwritablePath(t *testing.T) {
	tbl := testTable(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	for _, format := range []Format{FormatParquet, FormatCSV, FormatJSON} {
		err := Export(tbl, format, filepath.Join(missing, "out"))
		assert.ErrorContains(t, err, "failed to create", "format %s", format)
	}
}

// Two independent generation+export passes must produce byte-identical
// files, since the fixtures are committed and diffed.
func TestExportsAreByteDeterministic(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []Format{FormatCSV, FormatJSON} {
		var outputs [2][]byte
		for run := 0; run < 2; run++ {
			tbl := dataset.Generate(dataset.DefaultSeed, dataset.DefaultRows)
			path := filepath.Join(dir, fmt.Sprintf("%s-%d", format, run))
			require.NoError(t, Export(tbl, format, path))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			outputs[run] = raw
		}
		assert.Equal(t, outputs[0], outputs[1], "%s output differs between runs", format)
	}
}

func TestCSVShape(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToCSV(tbl, path))

	records := readCSV(t, path)
	require.Len(t, records, tbl.NumRows()+1)

	header := records[0]
	require.Len(t, header, tbl.NumColumns())
	for i, c := range tbl.Columns() {
		assert.Equal(t, c.Name, header[i])
	}
}

func TestCSVValues(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToCSV(tbl, path))

	records := readCSV(t, path)
	header, rows := records[0], records[1:]

	idIdx := headerIndex(t, header, "id")
	dateIdx := headerIndex(t, header, "date_standard")
	timeIdx := headerIndex(t, header, "time_standard")
	tzIdx := headerIndex(t, header, "timestamp_tz")
	nullsIdx := headerIndex(t, header, "all_nulls")
	singleIdx := headerIndex(t, header, "single_value")
	eodIdx := headerIndex(t, header, "end_of_day")

	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d{6})?$`)
	tzPattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`)

	wantOffsets := []string{"+00:00", "+05:30", "-05:00", "-08:00", "+01:00", "+09:00", "-03:00", "+08:00"}

	for i, row := range rows {
		id, err := strconv.ParseInt(row[idIdx], 10, 64)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id, "row %d", i)
		assert.Regexp(t, datePattern, row[dateIdx], "row %d", i)
		assert.Regexp(t, timePattern, row[timeIdx], "row %d", i)
		assert.Regexp(t, tzPattern, row[tzIdx], "row %d", i)
		assert.Equal(t, wantOffsets[i%len(wantOffsets)], row[tzIdx][len(row[tzIdx])-6:], "row %d", i)
		assert.Empty(t, row[nullsIdx], "row %d", i)
		assert.Equal(t, "2025-07-04T12:00:00", row[singleIdx], "row %d", i)
		if i%2 == 1 {
			assert.Equal(t, "23:59:59.999999", row[eodIdx], "row %d", i)
		} else {
			assert.Regexp(t, `^23:59:59\.999\d{3}$`, row[eodIdx], "row %d", i)
		}
	}
}

// The CSV renderings must decode back to the generated values.
func TestCSVRoundTripsTypedColumns(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToCSV(tbl, path))

	records := readCSV(t, path)
	header, rows := records[0], records[1:]

	dates, err := tbl.Column("date_standard")
	require.NoError(t, err)
	dateIdx := headerIndex(t, header, "date_standard")

	stamps, err := tbl.Column("timestamp_standard")
	require.NoError(t, err)
	stampIdx := headerIndex(t, header, "timestamp_standard")

	for i, row := range rows {
		d, err := time.Parse("2006-01-02", row[dateIdx])
		require.NoError(t, err)
		assert.True(t, d.Equal(dates.Cells[i].Raw.(time.Time)), "row %d", i)

		layout := "2006-01-02T15:04:05"
		if len(row[stampIdx]) > len(layout) {
			layout = "2006-01-02T15:04:05.000000"
		}
		ts, err := time.Parse(layout, row[stampIdx])
		require.NoError(t, err)
		assert.True(t, ts.Equal(stamps.Cells[i].Raw.(time.Time)), "row %d", i)
	}
}

func TestJSONValues(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ToJSON(tbl, path))

	records := readJSON(t, path)
	require.Len(t, records, tbl.NumRows())

	for i, rec := range records {
		require.Len(t, rec, tbl.NumColumns(), "row %d", i)

		// Integers survive as JSON numbers.
		assert.Equal(t, float64(i+1), rec["id"], "row %d", i)

		// The null column key is present, with a null value.
		v, ok := rec["all_nulls"]
		require.True(t, ok, "row %d", i)
		assert.Nil(t, v, "row %d", i)

		assert.Equal(t, "2025-07-04T12:00:00", rec["single_value"], "row %d", i)
	}
}

// A null cell must be null in every format: empty field in CSV, null in
// JSON.
func TestNullsAgreeAcrossFormats(t *testing.T) {
	tbl := testTable(t)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")
	require.NoError(t, ToCSV(tbl, csvPath))
	require.NoError(t, ToJSON(tbl, jsonPath))

	csvRecords := readCSV(t, csvPath)
	jsonRecords := readJSON(t, jsonPath)
	withNulls, err := tbl.Column("with_nulls")
	require.NoError(t, err)
	idx := headerIndex(t, csvRecords[0], "with_nulls")

	seenNull := false
	for i, v := range withNulls.Cells {
		if v.IsNull {
			seenNull = true
			assert.Empty(t, csvRecords[i+1][idx], "row %d", i)
			assert.Nil(t, jsonRecords[i]["with_nulls"], "row %d", i)
		} else {
			assert.NotEmpty(t, csvRecords[i+1][idx], "row %d", i)
			assert.Equal(t, csvRecords[i+1][idx], jsonRecords[i]["with_nulls"], "row %d", i)
		}
	}
	assert.True(t, seenNull)
}

// String columns pass through both text formats verbatim.
func TestStringColumnsPassThrough(t *testing.T) {
	tbl := testTable(t)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")
	require.NoError(t, ToCSV(tbl, csvPath))
	require.NoError(t, ToJSON(tbl, jsonPath))

	csvRecords := readCSV(t, csvPath)
	jsonRecords := readJSON(t, jsonPath)

	for _, name := range []string{"str_date_long", "str_datetime_us", "ambig_date"} {
		col, err := tbl.Column(name)
		require.NoError(t, err)
		idx := headerIndex(t, csvRecords[0], name)
		for i, v := range col.Cells {
			assert.Equal(t, v.Raw, csvRecords[i+1][idx], "%s row %d", name, i)
			assert.Equal(t, v.Raw, jsonRecords[i][name], "%s row %d", name, i)
		}
	}
}
