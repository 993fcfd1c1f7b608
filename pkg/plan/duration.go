package plan

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Duration holds a minutes value exactly as it was entered. Storage is
// permissive: numbers, free-form strings, and absent values all round-trip
// untouched. Only Minutes interprets the value, and it does so defensively.
type Duration struct {
	raw string // JSON text of the stored value, "" when unset
}

// Minutes returns a Duration for a known-good minute count.
func Minutes(n int) Duration {
	return Duration{raw: strconv.Itoa(n)}
}

// ParseDuration converts user input into a Duration. Blank input is
// unset; numeric input is stored as a number; anything else is stored
// verbatim as a string.
func ParseDuration(s string) Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Duration{raw: strconv.Itoa(n)}
	}
	// json.Marshal, not strconv.Quote: the stored text must stay valid
	// JSON even when the input holds control characters.
	quoted, err := json.Marshal(s)
	if err != nil {
		return Duration{}
	}
	return Duration{raw: string(quoted)}
}

// IsSet reports whether any value was entered.
func (d Duration) IsSet() bool {
	return d.raw != ""
}

// Minutes returns the value as whole minutes, or 0 when the stored value
// is unset, non-numeric, or negative.
func (d Duration) Minutes() int {
	if d.raw == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(d.text()))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// String renders the stored value for display, without interpretation.
func (d Duration) String() string {
	return d.text()
}

// text returns the stored value as plain text, decoding the JSON string
// form when present.
func (d Duration) text() string {
	if d.raw == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(d.raw), &s); err == nil {
		return s
	}
	return d.raw
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if d.raw == "" {
		return []byte("null"), nil
	}
	return []byte(d.raw), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		d.raw = ""
		return nil
	}
	d.raw = string(b)
	return nil
}
