package chatdump

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts used for export output.
const (
	timeLayout        = "2006.01.02 15:04"
	timeLayoutSeconds = "2006.01.02 15:04:05"
)

// FormatTimestamp renders a source-supplied timestamp for export.
//
// A numeric raw value is interpreted as a floating-point count of seconds
// since the Unix epoch, rounded to the nearest millisecond, and rendered in
// loc as "YYYY.MM.DD HH:MM" (with ":SS" when withSeconds is set). The zone
// is an explicit policy choice: passing time.Local reproduces the historical
// exporter behavior of zone-dependent output.
//
// A non-numeric raw value is assumed to be a host-rendered human string and
// is only lightly normalized.
func FormatTimestamp(raw string, loc *time.Location, withSeconds bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}

	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NormalizeRenderedTime(raw)
	}

	t := time.UnixMilli(int64(math.Round(sec * 1000))).In(loc)
	if withSeconds {
		return t.Format(timeLayoutSeconds)
	}
	return t.Format(timeLayout)
}

// NormalizeRenderedTime cleans up a host-rendered human timestamp: locale
// abbreviation quirks and typographic whitespace are normalized so exports
// are stable across host locales.
func NormalizeRenderedTime(s string) string {
	r := strings.NewReplacer(
		" ", " ", // non-breaking space
		" ", " ", // narrow non-breaking space
		"a.m.", "AM",
		"p.m.", "PM",
		"Sept ", "Sep ",
	)
	return strings.Join(strings.Fields(r.Replace(s)), " ")
}
