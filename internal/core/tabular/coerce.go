package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// epochTime interprets Unix epoch seconds. Sources deliver them as JSON
// numbers (float64 after decode), stringified numbers, or json.Number
func epochTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, false
		}
		sec, frac := math.Modf(t)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
	case int64:
		return time.Unix(t, 0).UTC(), true
	case json.Number:
		return epochString(t.String())
	case string:
		return epochString(t)
	default:
		return time.Time{}, false
	}
}

func epochString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	return epochTime(f)
}

// triBool maps native booleans, common string spellings, and nonzero
// numbers onto true/false; anything else is unknown
func triBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return false, false
		}
		return f != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "t", "1", "yes":
			return true, true
		case "false", "f", "0", "no":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// jsonText serializes nested structures back to JSON text. Absent and
// empty values collapse to the column sentinel so downstream readers see
// a stable, parseable token instead of a hole
func jsonText(v any, sentinel string) string {
	switch t := v.(type) {
	case nil:
		return sentinel
	case []any:
		if len(t) == 0 {
			return sentinel
		}
	case map[string]any:
		if len(t) == 0 {
			return sentinel
		}
	case string:
		if strings.TrimSpace(t) == "" {
			return sentinel
		}
		return t
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sentinel
	}
	return string(b)
}

// text renders a scalar as its string form
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// flattenProse replaces newline runs with single spaces
func flattenProse(s string) string {
	if !strings.ContainsAny(s, "\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inBreak := false
	for _, r := range s {
		if r == '\n' || r == '\r' {
			if !inBreak {
				b.WriteByte(' ')
				inBreak = true
			}
			continue
		}
		inBreak = false
		b.WriteRune(r)
	}
	return b.String()
}

// CSV renders the cell for row-oriented output. Null timestamps,
// booleans, and numerics render empty
func (c Cell) CSV() string {
	switch c.Kind {
	case Timestamp:
		if c.Null {
			return ""
		}
		return c.Time.Format(time.RFC3339)
	case Bool:
		if c.Null {
			return ""
		}
		return strconv.FormatBool(c.Bool)
	case Numeric:
		if c.Null {
			return ""
		}
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	default:
		return c.Str
	}
}

// Parquet returns the cell as a value for an OPTIONAL parquet field:
// int64 epoch millis, bool, float64, string, or nil for null
func (c Cell) Parquet() any {
	switch c.Kind {
	case Timestamp:
		if c.Null {
			return nil
		}
		return c.Time.UnixMilli()
	case Bool:
		if c.Null {
			return nil
		}
		return c.Bool
	case Numeric:
		if c.Null {
			return nil
		}
		return c.Num
	default:
		return c.Str
	}
}
