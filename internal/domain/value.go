package domain

import (
	"strconv"
	"strings"
	"time"
)

// Attribute type tags. The set is open-ended; unknown tags fall back to
// string interpretation.
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeDate   = "date"
)

// TypedValue is the reader-side interpretation of a stored text value.
// Exactly one of the typed fields is set, selected by Kind.
type TypedValue struct {
	Kind   string
	String string
	Number float64
	Date   time.Time
}

// dateLayouts accepted when parsing "date" values, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTypedValue interprets raw according to the attribute's type tag.
// Values are never coerced at write time, so a stored value may not match
// its tag; in that case the value falls back to Kind "string" rather than
// erroring, preserving what the owner actually stored.
func ParseTypedValue(typeTag, raw string) TypedValue {
	switch strings.ToLower(strings.TrimSpace(typeTag)) {
	case TypeNumber, "integer", "int", "float":
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return TypedValue{Kind: TypeNumber, Number: n}
		}
	case TypeDate:
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
				return TypedValue{Kind: TypeDate, Date: d}
			}
		}
	}
	return TypedValue{Kind: TypeString, String: raw}
}
