// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultPeriod is applied whenever a period string cannot be understood.
const DefaultPeriod = 24 * time.Hour

// maxPeriodUnits caps the numeric part of a period so that the resulting
// duration never overflows time.Duration.
const maxPeriodUnits = 100_000

var periodPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*(hour|day)s?\s*$`)

// Period is a waiting or inactivity interval expressed on the wire and in
// storage as a human readable string such as "24 hours" or "30 days".
//
// The original text is kept so that a value read from storage is written
// back byte for byte. Durations are only ever computed from the parsed value.
type Period struct {
	d    time.Duration
	text string

	// parsed marks a value built from text, even empty text.
	parsed bool
}

// ParsePeriod parses strings of the form "<N> hour(s)" or "<N> day(s)".
// Anything else, including the empty string, resolves to [DefaultPeriod];
// the unmatched text is still kept so it round-trips unchanged.
func ParsePeriod(s string) Period {
	m := periodPattern.FindStringSubmatch(s)
	if m == nil {
		return Period{d: DefaultPeriod, text: s, parsed: true}
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > maxPeriodUnits {
		return Period{d: DefaultPeriod, text: s, parsed: true}
	}

	unit := time.Hour
	if strings.EqualFold(m[2], "day") {
		unit = 24 * time.Hour
	}

	return Period{d: time.Duration(n) * unit, text: s, parsed: true}
}

// Duration returns the parsed length of the period.
func (p Period) Duration() time.Duration {
	return p.d
}

// IsZero reports whether the period was never set.
func (p Period) IsZero() bool {
	return !p.parsed && p.d == 0
}

// String returns the parsed text unchanged. Periods built from a duration
// render canonically as "<N> days" or "<N> hours".
func (p Period) String() string {
	if p.parsed {
		return p.text
	}

	day := 24 * time.Hour
	if p.d > 0 && p.d%day == 0 {
		return plural(int64(p.d/day), "day")
	}

	return plural(int64(p.d/time.Hour), "hour")
}

// MarshalJSON encodes the period as its string form.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a period string. An empty string leaves the period
// unset so that callers can substitute a configured default.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("period must be a string: %w", err)
	}

	if strings.TrimSpace(s) == "" {
		*p = Period{}
		return nil
	}

	*p = ParsePeriod(s)
	return nil
}

// UnmarshalText lets periods be read from environment variables and flags.
func (p *Period) UnmarshalText(text []byte) error {
	*p = ParsePeriod(string(text))
	return nil
}

// Scan implements [sql.Scanner] for TEXT columns.
func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*p = ParsePeriod(v)
	case []byte:
		*p = ParsePeriod(string(v))
	case nil:
		*p = Period{}
	default:
		return fmt.Errorf("cannot scan %T into Period", src)
	}

	return nil
}

// Value implements [driver.Valuer].
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
