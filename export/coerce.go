package export

import (
	"fmt"
	"time"

	"dtsgen/dataset"
)

// isoFraction renders the sub-second part: empty when the value carries no
// microseconds, a dot and exactly six digits otherwise. Trailing zeros are
// kept so the width never varies within a value.
func isoFraction(t time.Time) string {
	micros := t.Nanosecond() / 1000
	if micros == 0 {
		return ""
	}
	return fmt.Sprintf(".%06d", micros)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func isoTime(t time.Time) string {
	return t.Format("15:04:05") + isoFraction(t)
}

func isoDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + isoFraction(t)
}

// isoDateTimeTZ keeps the wall clock and appends the numeric UTC offset.
// A zero offset renders as +00:00, never as Z.
func isoDateTimeTZ(t time.Time) string {
	return isoDateTime(t) + t.Format("-07:00")
}

// formatValue converts a cell to its text form for CSV export. Nulls become
// empty fields.
func formatValue(kind dataset.Kind, v dataset.Value) string {
	if v.IsNull {
		return ""
	}

	switch kind {
	case dataset.KindInt:
		return fmt.Sprintf("%d", v.Raw.(int64))

	case dataset.KindDate:
		return isoDate(v.Raw.(time.Time))

	case dataset.KindTime:
		return isoTime(v.Raw.(time.Time))

	case dataset.KindTimestamp:
		return isoDateTime(v.Raw.(time.Time))

	case dataset.KindTimestampTZ:
		return isoDateTimeTZ(v.Raw.(time.Time))

	case dataset.KindString:
		return v.Raw.(string)

	default:
		return fmt.Sprintf("%v", v.Raw)
	}
}

// typedValue returns the value for JSON export (preserves types). Nulls
// become JSON null, integers stay numeric, everything temporal uses the
// same renderings as the CSV export.
func typedValue(kind dataset.Kind, v dataset.Value) interface{} {
	if v.IsNull {
		return nil
	}
	if kind == dataset.KindInt {
		return v.Raw.(int64)
	}
	return formatValue(kind, v)
}
