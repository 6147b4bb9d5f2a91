// Package tabular projects heterogeneous raw records onto a fixed, typed
// column schema. Projection is pure: unparsable values coerce to null or
// a documented sentinel, never to an error, and no row is ever dropped
package tabular

import (
	"time"

	"dumpsift/internal/platform/logger"
)

// Kind selects the coercion rule for a column
type Kind int

const (
	// Text is a free string; missing becomes the empty string
	Text Kind = iota

	// Prose is Text with embedded newlines flattened to single spaces,
	// keeping row-oriented output single-line-safe
	Prose

	// Timestamp is Unix epoch seconds converted to UTC; unparsable -> null
	Timestamp

	// Bool is tri-state: true, false, or null for unknown
	Bool

	// Numeric coerces to float64; unparsable -> null
	Numeric

	// JSONText serializes nested arrays/objects to a JSON string; an
	// absent or empty source value becomes the column's sentinel
	JSONText

	// Enum is Text with a non-empty default for missing values
	Enum
)

// Column declares one output field: its name, coercion rule, and the
// sentinel/default substituted for missing input
type Column struct {
	Name    string
	Kind    Kind
	Default string
}

// Schema is the ordered column set of one record kind. Every projected
// row carries exactly these columns in exactly this order
type Schema []Column

// Names returns the column names in schema order
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}
	return out
}

// Cell is one typed value of a projected row. Null marks absent
// timestamps, booleans, and numerics; string-kinded cells are never null
type Cell struct {
	Kind Kind
	Null bool
	Time time.Time
	Bool bool
	Num  float64
	Str  string
}

// Row is one projected record, aligned with its Schema
type Row []Cell

// Project maps rec onto the schema. Every column yields exactly one cell;
// coercion failures degrade to null/sentinel and log at debug
func (s Schema) Project(rec map[string]any) Row {
	row := make(Row, len(s))
	for i, col := range s {
		v, present := rec[col.Name]
		cell, ok := col.coerce(v, present)
		if !ok {
			logger.Named("tabular").Debug().
				Str("column", col.Name).
				Msg("unparsable value coerced to null")
		}
		row[i] = cell
	}
	return row
}

// coerce applies the column's rule; ok is false when a present value
// could not be interpreted (the cell still carries the degraded result)
func (c Column) coerce(v any, present bool) (Cell, bool) {
	switch c.Kind {
	case Timestamp:
		if !present || v == nil {
			return Cell{Kind: c.Kind, Null: true}, true
		}
		ts, ok := epochTime(v)
		if !ok {
			return Cell{Kind: c.Kind, Null: true}, false
		}
		return Cell{Kind: c.Kind, Time: ts}, true

	case Bool:
		if !present || v == nil {
			return Cell{Kind: c.Kind, Null: true}, true
		}
		b, ok := triBool(v)
		if !ok {
			return Cell{Kind: c.Kind, Null: true}, false
		}
		return Cell{Kind: c.Kind, Bool: b}, true

	case Numeric:
		if !present || v == nil {
			return Cell{Kind: c.Kind, Null: true}, true
		}
		f, ok := numeric(v)
		if !ok {
			return Cell{Kind: c.Kind, Null: true}, false
		}
		return Cell{Kind: c.Kind, Num: f}, true

	case JSONText:
		return Cell{Kind: c.Kind, Str: jsonText(v, c.Default)}, true

	case Enum:
		if !present || v == nil {
			return Cell{Kind: c.Kind, Str: c.Default}, true
		}
		return Cell{Kind: c.Kind, Str: text(v)}, true

	case Prose:
		if !present || v == nil {
			return Cell{Kind: c.Kind, Str: ""}, true
		}
		return Cell{Kind: c.Kind, Str: flattenProse(text(v))}, true

	default: // Text
		if !present || v == nil {
			return Cell{Kind: c.Kind, Str: ""}, true
		}
		return Cell{Kind: c.Kind, Str: text(v)}, true
	}
}
