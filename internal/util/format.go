package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// DefaultEllipsis is inserted between the kept ends of a truncated string.
const DefaultEllipsis = "..."

// displayOffset is the fixed UTC+8 shift applied before calendar fields are read.
const displayOffset = 8 * 60 * time.Minute

// invalidDate is what the date template yields when every field is NaN and
// the month lookup misses.
const invalidDate = "undefined NaN, NaN NaN:NaN"

// maxDateMillis bounds a representable date in either direction from the epoch.
const maxDateMillis = 8_640_000_000_000_000

var (
	minInstant = time.UnixMilli(-maxDateMillis)
	maxInstant = time.UnixMilli(maxDateMillis)
)

// zoneOffsets are the zone abbreviations recognized in RFC 1123 dates, in
// seconds east of UTC. Any other abbreviation is rejected.
var zoneOffsets = map[string]int{
	"GMT": 0,
	"UT":  0,
	"UTC": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

var sizeUnits = [...]string{"bytes", "KB", "MB", "GB"}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// dateLayouts are tried in order. Layouts without a zone parse as UTC.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC1123,
	time.RFC1123Z,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// FormatFileSize formats a byte count as "<n> <unit>" where n is rounded up.
// Sizes of 1024 GB and beyond are still reported in GB.
func FormatFileSize(size float64) string {
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return formatNumber(math.Ceil(size)) + " " + sizeUnits[unit]
}

// formatNumber renders f the way a JavaScript number stringifies.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TruncateString keeps the first front and last back characters of s and joins
// them with DefaultEllipsis.
func TruncateString(s string, front, back int) string {
	return TruncateStringWith(s, front, back, DefaultEllipsis)
}

// TruncateStringWith is TruncateString with a caller-supplied ellipsis.
//
// Lengths count UTF-16 code units. Out-of-range counts are clamped the way a
// substring call clamps them, so a negative back keeps nothing from the end.
// A surrogate pair split by the cut decodes to U+FFFD.
func TruncateStringWith(s string, front, back int, ellipsis string) string {
	units := utf16.Encode([]rune(s))
	n := len(units)
	if withinWindow(n, front, back) {
		return s
	}
	start := n
	if back > 0 {
		start = n - back
	}
	return substring(units, 0, front) + ellipsis + substring(units, start, n)
}

// withinWindow reports n <= front+back without overflowing.
func withinWindow(n, front, back int) bool {
	switch {
	case front >= 0:
		return n-front <= back
	case back >= 0:
		return n <= front+back
	default:
		return false
	}
}

func substring(units []uint16, start, end int) string {
	start = clamp(start, 0, len(units))
	end = clamp(end, 0, len(units))
	if start > end {
		start, end = end, start
	}
	return string(utf16.Decode(units[start:end]))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatDate parses dateString and formats it as "Jan 2, 2006 15:04" after
// shifting the instant by +8h. Input that cannot be parsed yields the
// invalid-date rendering instead of an error.
func FormatDate(dateString string) string {
	t, ok := parseDate(dateString)
	if !ok {
		return invalidDate
	}
	return FormatTime(t)
}

// FormatUnixMilli formats milliseconds since the Unix epoch like FormatDate.
func FormatUnixMilli(ms int64) string {
	return FormatTime(time.UnixMilli(ms))
}

// FormatTime adds 480 minutes to t and reads the calendar fields in UTC.
// The result does not depend on the host timezone or on t's location.
// Instants outside ±8.64e15 ms of the epoch, before or after the shift,
// yield the invalid-date rendering.
func FormatTime(t time.Time) string {
	shifted := t.UTC().Add(displayOffset)
	if t.Before(minInstant) || shifted.After(maxInstant) {
		return invalidDate
	}
	return fmt.Sprintf("%s %d, %d %02d:%02d",
		monthNames[shifted.Month()-1],
		shifted.Day(),
		shifted.Year(),
		shifted.Hour(),
		shifted.Minute(),
	)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	// Date.toString() appends a zone name such as "(China Standard Time)".
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	// ISO end of day: T24:00 with zero minutes and seconds is the next midnight.
	if len(s) >= 16 && s[10] == 'T' && s[11:13] == "24" {
		t, ok := parseLayouts(s[:11] + "00" + s[13:])
		if !ok || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
			return time.Time{}, false
		}
		return t.Add(24 * time.Hour), true
	}
	return parseLayouts(s)
}

func parseLayouts(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if strings.Contains(layout, "MST") {
			return withNamedZone(t)
		}
		return t, true
	}
	return time.Time{}, false
}

// withNamedZone reinterprets t's wall clock in the offset its zone
// abbreviation names. time.Parse reads unknown abbreviations as UTC.
func withNamedZone(t time.Time) (time.Time, bool) {
	name, _ := t.Zone()
	offset, ok := zoneOffsets[name]
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, offset)), true
}
