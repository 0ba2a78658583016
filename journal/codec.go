package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TagSeparator joins multi-valued fields on the wire. Reads split on the
// bare comma and trim, so any amount of whitespace round-trips cleanly.
const TagSeparator = ", "

// DateLayout is the wire format for dates. Dates are local calendar
// days with no time component; formatting must never route through UTC
// or a day can shift across timezones.
const DateLayout = "2006-01-02"

// SplitTags decodes a comma-joined wire string into a deduplicated,
// order-preserving sequence of trimmed non-empty tags.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// JoinTags encodes a tag sequence into the wire representation,
// normalizing it the same way SplitTags does on the way in.
func JoinTags(tags []string) string {
	return strings.Join(SplitTags(strings.Join(tags, ",")), TagSeparator)
}

// ParseDate decodes a wire date. Empty or unparseable input yields nil:
// manual text entry degrades to "no date" rather than an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate encodes a date using its local calendar fields. A nil date
// encodes to the empty string.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseNumber decodes a wire decimal. Non-numeric input coerces to 0.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatNumber encodes a number as a plain decimal string.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToDisplay converts a wire string into the display representation for
// the field: *time.Time for dates, float64 for numbers, []string for tag
// fields, string for free text.
func ToDisplay(f Field, wire string) any {
	switch f.Kind() {
	case KindDate:
		return ParseDate(wire)
	case KindNumber:
		return ParseNumber(wire)
	case KindTags:
		return SplitTags(wire)
	default:
		return wire
	}
}

// ToWire converts a display value into the wire representation for the
// field. The result is a string for every kind except a null date, which
// is nil so it serializes as JSON null. Coercion is lenient: values of
// the wrong type degrade to the field's default rather than failing.
func ToWire(f Field, v any) any {
	switch f.Kind() {
	case KindDate:
		if d := coerceDate(v); d != nil {
			return FormatDate(d)
		}
		return nil
	case KindNumber:
		return FormatNumber(coerceNumber(v))
	case KindTags:
		return JoinTags(coerceTags(v))
	default:
		return coerceText(v)
	}
}

func coerceText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return ParseNumber(n)
	default:
		return 0
	}
}

func coerceTags(v any) []string {
	switch t := v.(type) {
	case []string:
		return SplitTags(strings.Join(t, ","))
	case string:
		return SplitTags(t)
	default:
		return nil
	}
}

func coerceDate(v any) *time.Time {
	switch d := v.(type) {
	case *time.Time:
		return d
	case time.Time:
		return &d
	case string:
		return ParseDate(d)
	default:
		return nil
	}
}
