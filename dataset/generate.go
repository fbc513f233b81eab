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

package dataset

import (
	"fmt"
	"math/rand"
	"time"
)

// Fixed run parameters. The downstream parser fixtures are committed
// baselines, so the seed and row count must not change between runs.
const (
	// DefaultSeed seeds the shared random source.
	DefaultSeed int64 = 42

	// DefaultRows is the fixture row count.
	DefaultRows = 450

	// nullProbability is the per-row null chance in the with_nulls column.
	nullProbability = 0.2
)

// anchor2000 is the reference instant for the full-range columns,
// epochAnchor for the epoch_boundary column.
var (
	anchor2000  = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	epochAnchor = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// timestampOffsets is the offset palette for the timestamp_tz column,
// assigned round-robin by row index.
var timestampOffsets = []*time.Location{
	time.UTC,
	time.FixedZone("IST", 5*3600+30*60),
	time.FixedZone("EST", -5*3600),
	time.FixedZone("PST", -8*3600),
	time.FixedZone("CET", 1*3600),
	time.FixedZone("JST", 9*3600),
	time.FixedZone("BRT", -3*3600),
	time.FixedZone("SGT", 8*3600),
}

// varietyOffsets is the wider palette for the timezone_variety column. It
// includes the non-integer-hour IST and the extremes AoE and LINT.
var varietyOffsets = []*time.Location{
	time.UTC,
	time.FixedZone("IST", 5*3600+30*60),
	time.FixedZone("EST", -5*3600),
	time.FixedZone("PST", -8*3600),
	time.FixedZone("CET", 1*3600),
	time.FixedZone("JST", 9*3600),
	time.FixedZone("BRT", -3*3600),
	time.FixedZone("SGT", 8*3600),
	time.FixedZone("AEST", 10*3600),
	time.FixedZone("EDT", -4*3600),
	time.FixedZone("EET", 2*3600),
	time.FixedZone("MST", -7*3600),
	time.FixedZone("NZST", 12*3600),
	time.FixedZone("AoE", -12*3600),
	time.FixedZone("LINT", 14*3600),
}

// monthEnds covers every month-length class of the Gregorian calendar
// (28, 29, 30 and 31 days), cycled round-robin by row index.
var monthEnds = []time.Time{
	time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
	time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
}

// Year pools for the leap_year_dates column.
var (
	leapYears    = []int{2000, 2004, 2008, 2012, 2016, 2020, 2024}
	nonLeapYears = []int{2001, 2002, 2003, 2005, 2006, 2007, 2009}
)

// Generate builds the stress-test table. A single random source, seeded
// with seed, is consumed in the fixed column order below; that order is
// part of the regression-baseline contract, since reordering the calls
// would change every later column's values.
//
// rows must be positive; passing anything else is a programming error and
// panics.
func Generate(seed int64, rows int) *Table {
	if rows <= 0 {
		panic(fmt.Sprintf("dataset: row count must be positive, got %d", rows))
	}

	rng := rand.New(rand.NewSource(seed))
	t := &Table{rows: rows}

	// Section 1: core temporal types.
	t.add(idColumn(rows))
	t.add(dateStandardColumn(rng, rows))
	t.add(timeStandardColumn(rng, rows))
	t.add(timestampStandardColumn(rng, rows))
	t.add(timestampTZColumn(rng, rows))

	// Section 2: bounded spans, one per interval-detector granularity.
	t.add(rangeColumn(rng, rows, "range_seconds", time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC), 120*time.Second))
	t.add(rangeColumn(rng, rows, "range_minutes", time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC), 120*time.Minute))
	t.add(rangeColumn(rng, rows, "range_hours", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 48*time.Hour))
	t.add(rangeColumn(rng, rows, "range_days", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 60*24*time.Hour))
	t.add(rangeColumn(rng, rows, "range_weeks", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 180*24*time.Hour))
	t.add(rangeColumn(rng, rows, "range_months", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), 1095*24*time.Hour))
	t.add(rangeColumn(rng, rows, "range_years", time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC), 7300*24*time.Hour))

	// Section 3: edge cases.
	t.add(allNullsColumn(rows))
	t.add(singleValueColumn(rows))
	t.add(withNullsColumn(rng, rows))
	t.add(boundaryColumn(rng, rows, "epoch_boundary", epochAnchor))
	t.add(boundaryColumn(rng, rows, "y2k_boundary", anchor2000))
	t.add(leapYearDatesColumn(rows))
	t.add(monthBoundariesColumn(rows))

	// Section 4: sub-second precision tiers. The clock sampling is shared;
	// only the sub-second domain differs.
	t.add(precisionColumn(rng, rows, "precision_whole_sec", func(*rand.Rand) int { return 0 }))
	t.add(precisionColumn(rng, rows, "precision_milli", func(r *rand.Rand) int { return r.Intn(1000) * 1000 }))
	t.add(precisionColumn(rng, rows, "precision_micro", func(r *rand.Rand) int { return r.Intn(1000000) }))

	// Section 5: special cases.
	t.add(midnightTimesColumn(rng, rows))
	t.add(endOfDayColumn(rng, rows))
	t.add(timezoneVarietyColumn(rows))

	// Sections 6 and 7: string renderings of a private base series.
	for _, c := range stringColumns(rng, rows) {
		t.add(c)
	}

	return t
}

// uniformInt draws a continuous uniform value in [lo, hi) and truncates it
// toward zero.
func uniformInt(rng *rand.Rand, lo, hi float64) int {
	return int(lo + rng.Float64()*(hi-lo))
}

// timeOfDay builds a KindTime cell value on the reference day.
func timeOfDay(hour, min, sec, micros int) time.Time {
	return time.Date(1970, time.January, 1, hour, min, sec, micros*1000, time.UTC)
}

// withZone reattaches loc to the wall-clock components of t, the way a
// tzinfo replacement does: the printed time stays the same, the absolute
// instant shifts by the offset.
func withZone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func idColumn(rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(int64(i + 1))
	}
	return Column{Name: "id", Kind: KindInt, Cells: cells}
}

// dateStandardColumn spans roughly 55 years around 2000-01-01.
func dateStandardColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(anchor2000.AddDate(0, 0, uniformInt(rng, -10000, 10000)))
	}
	return Column{Name: "date_standard", Kind: KindDate, Cells: cells}
}

func timeStandardColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(timeOfDay(rng.Intn(24), rng.Intn(60), rng.Intn(60), rng.Intn(1000000)))
	}
	return Column{Name: "time_standard", Kind: KindTime, Cells: cells}
}

func timestampStandardColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		ts := anchor2000.AddDate(0, 0, uniformInt(rng, -10000, 10000)).
			Add(time.Duration(rng.Intn(86400))*time.Second + time.Duration(rng.Intn(1000000))*time.Microsecond)
		cells[i] = NewValue(ts)
	}
	return Column{Name: "timestamp_standard", Kind: KindTimestamp, Cells: cells}
}

func timestampTZColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		wall := anchor2000.AddDate(0, 0, uniformInt(rng, -10000, 10000)).
			Add(time.Duration(rng.Intn(86400)) * time.Second)
		cells[i] = NewValue(withZone(wall, timestampOffsets[i%len(timestampOffsets)]))
	}
	return Column{Name: "timestamp_tz", Kind: KindTimestampTZ, Cells: cells}
}

// rangeColumn samples a continuous uniform offset within [0, window) from a
// fixed anchor, truncated to microseconds, so successive rows are not
// evenly spaced.
func rangeColumn(rng *rand.Rand, rows int, name string, anchor time.Time, window time.Duration) Column {
	windowMicros := float64(window / time.Microsecond)
	cells := make([]Value, rows)
	for i := range cells {
		micros := int64(rng.Float64() * windowMicros)
		cells[i] = NewValue(anchor.Add(time.Duration(micros) * time.Microsecond))
	}
	return Column{Name: name, Kind: KindTimestamp, Cells: cells}
}

func allNullsColumn(rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NullValue()
	}
	return Column{Name: "all_nulls", Kind: KindNull, Cells: cells}
}

func singleValueColumn(rows int) Column {
	single := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(single)
	}
	return Column{Name: "single_value", Kind: KindTimestamp, Cells: cells}
}

// withNullsColumn nulls each row independently with nullProbability. The
// null decision is drawn first, so null rows consume exactly one value from
// the random stream.
func withNullsColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		if rng.Float64() < nullProbability {
			cells[i] = NullValue()
			continue
		}
		ts := anchor2000.AddDate(0, 0, uniformInt(rng, -1000, 1000)).
			Add(time.Duration(1+rng.Intn(86399))*time.Second + time.Duration(rng.Intn(1000000))*time.Microsecond)
		cells[i] = NewValue(ts)
	}
	return Column{Name: "with_nulls", Kind: KindTimestamp, Cells: cells}
}

// boundaryColumn clusters timestamps within a year of the given anchor.
func boundaryColumn(rng *rand.Rand, rows int, name string, anchor time.Time) Column {
	cells := make([]Value, rows)
	for i := range cells {
		ts := anchor.AddDate(0, 0, uniformInt(rng, -365, 365)).
			Add(time.Duration(1+rng.Intn(86399))*time.Second + time.Duration(rng.Intn(1000000))*time.Microsecond)
		cells[i] = NewValue(ts)
	}
	return Column{Name: name, Kind: KindTimestamp, Cells: cells}
}

// leapYearDatesColumn cycles three cases: Feb 29 on a leap year, Feb 28 on
// a leap year, Feb 28 on a non-leap year.
func leapYearDatesColumn(rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		switch i % 3 {
		case 0:
			cells[i] = NewValue(time.Date(leapYears[i%len(leapYears)], time.February, 29, 0, 0, 0, 0, time.UTC))
		case 1:
			cells[i] = NewValue(time.Date(leapYears[i%len(leapYears)], time.February, 28, 0, 0, 0, 0, time.UTC))
		default:
			cells[i] = NewValue(time.Date(nonLeapYears[i%len(nonLeapYears)], time.February, 28, 0, 0, 0, 0, time.UTC))
		}
	}
	return Column{Name: "leap_year_dates", Kind: KindDate, Cells: cells}
}

func monthBoundariesColumn(rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(monthEnds[i%len(monthEnds)])
	}
	return Column{Name: "month_boundaries", Kind: KindDate, Cells: cells}
}

// precisionColumn samples hour/minute/second uniformly on a fixed day and
// delegates the sub-second component to subsecond.
func precisionColumn(rng *rand.Rand, rows int, name string, subsecond func(*rand.Rand) int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		cells[i] = NewValue(time.Date(2025, time.June, 15,
			rng.Intn(24), rng.Intn(60), rng.Intn(60), subsecond(rng)*1000, time.UTC))
	}
	return Column{Name: name, Kind: KindTimestamp, Cells: cells}
}

// midnightTimesColumn emits 00:00:00 values, with random microseconds on
// even rows and none on odd rows.
func midnightTimesColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		micros := 0
		if i%2 == 0 {
			micros = rng.Intn(1000000)
		}
		cells[i] = NewValue(timeOfDay(0, 0, 0, micros))
	}
	return Column{Name: "midnight_times", Kind: KindTime, Cells: cells}
}

// endOfDayColumn emits 23:59:59 values just below midnight, shaved by up to
// a millisecond on even rows.
func endOfDayColumn(rng *rand.Rand, rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		micros := 999999
		if i%2 == 0 {
			micros = 999999 - rng.Intn(1000)
		}
		cells[i] = NewValue(timeOfDay(23, 59, 59, micros))
	}
	return Column{Name: "end_of_day", Kind: KindTime, Cells: cells}
}

// timezoneVarietyColumn walks one hour per row from a fixed noon and cycles
// the full offset palette, with no random draws at all.
func timezoneVarietyColumn(rows int) Column {
	base := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	cells := make([]Value, rows)
	for i := range cells {
		wall := base.Add(time.Duration(i) * time.Hour)
		cells[i] = NewValue(withZone(wall, varietyOffsets[i%len(varietyOffsets)]))
	}
	return Column{Name: "timezone_variety", Kind: KindTimestampTZ, Cells: cells}
}
