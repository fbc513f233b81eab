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

	"github.com/lestrrat-go/strftime"
)

// The ambiguous column cycles its year through a fixed window starting at
// ambigYearBase.
const (
	ambigYearBase   = 2020
	ambigYearWindow = 6
)

// stringColumns renders a private base series through the strftime patterns
// below, then appends the two constructed columns. The base series is drawn
// fresh here, so the string columns never agree row-by-row with the typed
// temporal columns. All dates are drawn before any clock components.
func stringColumns(rng *rand.Rand, rows int) []Column {
	baseDates := make([]time.Time, rows)
	for i := range baseDates {
		baseDates[i] = anchor2000.AddDate(0, 0, uniformInt(rng, -10000, 10000))
	}
	baseDatetimes := make([]time.Time, rows)
	for i, d := range baseDates {
		baseDatetimes[i] = d.Add(time.Duration(rng.Intn(24))*time.Hour +
			time.Duration(rng.Intn(60))*time.Minute +
			time.Duration(rng.Intn(60))*time.Second +
			time.Duration(rng.Intn(1000000))*time.Microsecond)
	}

	cols := []Column{
		formatColumn("str_date_iso", "%Y-%m-%d", baseDates),
		formatColumn("str_date_us", "%m/%d/%Y", baseDates),
		formatColumn("str_date_eu", "%d/%m/%Y", baseDates),
		formatColumn("str_date_compact", "%Y%m%d", baseDates),
		formatColumn("str_date_long", "%B %d, %Y", baseDates),
		formatColumn("str_time_24h", "%H:%M:%S", baseDatetimes),
		formatColumn("str_time_12h", "%I:%M:%S %p", baseDatetimes),
		formatColumn("str_time_micro", "%H:%M:%S.%f", baseDatetimes),
		formatColumn("str_datetime_iso", "%Y-%m-%d %H:%M:%S", baseDatetimes),
		formatColumn("str_datetime_iso_t", "%Y-%m-%dT%H:%M:%S", baseDatetimes),
		formatColumn("str_datetime_us", "%m/%d/%Y %I:%M:%S %p", baseDatetimes),
		formatColumn("str_datetime_eu", "%d/%m/%Y %H:%M:%S", baseDatetimes),
	}
	cols = append(cols, ambiguousDateColumn(rows))
	cols = append(cols, formatColumn("str_date_short_year", "%d/%m/%y", baseDates))
	return cols
}

// formatColumn renders src through a single strftime pattern.
func formatColumn(name, pattern string, src []time.Time) Column {
	f := mustFormatter(pattern)
	cells := make([]Value, len(src))
	for i, t := range src {
		cells[i] = NewValue(f.FormatString(t))
	}
	return Column{Name: name, Kind: KindString, Cells: cells}
}

// mustFormatter compiles a pattern with %f mapped to six-digit
// microseconds. The patterns are fixed literals, so failure to compile is a
// programming error.
func mustFormatter(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern, strftime.WithMicroseconds('f'))
	if err != nil {
		panic(fmt.Sprintf("dataset: invalid strftime pattern %q: %v", pattern, err))
	}
	return f
}

// ambiguousDateColumn keeps day and month in lockstep within 1..12 so that
// every value parses under both month-first and day-first conventions, with
// the year cycling through a small fixed window.
func ambiguousDateColumn(rows int) Column {
	cells := make([]Value, rows)
	for i := range cells {
		n := i%12 + 1
		year := ambigYearBase + i%ambigYearWindow
		cells[i] = NewValue(fmt.Sprintf("%02d/%02d/%d", n, n, year))
	}
	return Column{Name: "ambig_date", Kind: KindString, Cells: cells}
}
