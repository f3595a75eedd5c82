package util

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want string
	}{
		{"zero", 0, "0 bytes"},
		{"just under a kilobyte", 1023, "1023 bytes"},
		{"one kilobyte", 1024, "1 KB"},
		{"ceiling not nearest", 1536, "2 KB"},
		{"one byte over", 1025, "2 KB"},
		{"fractional bytes", 0.5, "1 bytes"},
		{"one megabyte", 1024 * 1024, "1 MB"},
		{"one gigabyte", 1024 * 1024 * 1024, "1 GB"},
		{"two terabytes stay in GB", 2 * math.Pow(1024, 4), "2048 GB"},
		{"petabytes stay in GB", 5000 * math.Pow(1024, 4), "5120000 GB"},
		{"negative passes through", -5, "-5 bytes"},
		{"negative zero after ceiling", -0.5, "0 bytes"},
		{"NaN", math.NaN(), "NaN bytes"},
		{"infinity climbs to GB", math.Inf(1), "Infinity GB"},
		{"negative infinity", math.Inf(-1), "-Infinity bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.size))
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		front, back int
		want        string
	}{
		{"truncates when longer than window", "hello", 2, 2, "he...lo"},
		{"short string unchanged", "hi", 2, 2, "hi"},
		{"exact window unchanged", "abcd", 2, 2, "abcd"},
		{"empty string", "", 0, 0, ""},
		{"no front", "abcdef", 0, 2, "...ef"},
		{"no back", "abcdef", 2, 0, "ab..."},
		{"negative back keeps nothing from end", "abcdef", 2, -1, "ab..."},
		{"front past end clamps", "abc", 5, -3, "abc..."},
		{"negative front clamps", "abcdef", -2, 3, "...def"},
		{"multibyte BMP counts one unit each", "héllo wörld", 2, 2, "hé...ld"},
		{"astral runes count two units", "😀😀😀", 2, 2, "😀...😀"},
		{"split surrogate pair", "😀abc", 1, 1, "\uFFFD...c"},
		{"huge window does not overflow", "abc", 1 << 62, 1 << 62, "abc"},
		{"max counts do not overflow", "abc", math.MaxInt, math.MaxInt, "abc"},
		{"min counts do not overflow", "abc", math.MinInt, math.MinInt, "..."},
		{"huge back with negative front", "abcdef", -1, math.MaxInt, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.s, tt.front, tt.back))
		})
	}
}

func TestTruncateStringWith(t *testing.T) {
	assert.Equal(t, "abc---fgh", TruncateStringWith("abcdefgh", 3, 3, "---"))
	assert.Equal(t, "abfgh", TruncateStringWith("abcdefgh", 2, 3, ""))
	assert.Equal(t, "abcdefgh", TruncateStringWith("abcdefgh", 4, 4, "---"))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso with millis", "2024-01-15T00:00:00.000Z", "Jan 15, 2024 08:00"},
		{"rolls over the year", "2024-12-31T16:00:00Z", "Jan 1, 2025 00:00"},
		{"explicit offset", "2024-01-15T10:30:00+08:00", "Jan 15, 2024 10:30"},
		{"negative offset", "2024-07-04T09:05:00-04:00", "Jul 4, 2024 21:05"},
		{"date only", "2024-03-05", "Mar 5, 2024 08:00"},
		{"no zone reads as utc", "2024-03-05T12:00:00", "Mar 5, 2024 20:00"},
		{"postgres timestamp", "2024-01-15 08:30:00.123456+00", "Jan 15, 2024 16:30"},
		{"leap day", "2024-02-28T20:00:00Z", "Feb 29, 2024 04:00"},
		{"surrounding whitespace", "  2024-01-15T00:00:00Z\n", "Jan 15, 2024 08:00"},
		{"rfc1123", "Mon, 15 Jan 2024 00:00:00 GMT", "Jan 15, 2024 08:00"},
		{"rfc1123 utc", "Mon, 15 Jan 2024 00:00:00 UTC", "Jan 15, 2024 08:00"},
		{"rfc1123 eastern standard", "Mon, 15 Jan 2024 00:00:00 EST", "Jan 15, 2024 13:00"},
		{"rfc1123 pacific daylight", "Sun, 07 Jul 2024 10:00:00 PDT", "Jul 8, 2024 01:00"},
		{"rfc1123 unknown zone", "Mon, 15 Jan 2024 00:00:00 CET", "undefined NaN, NaN NaN:NaN"},
		{"rfc1123 numeric offset", "Mon, 15 Jan 2024 00:00:00 -0500", "Jan 15, 2024 13:00"},
		{"end of day rolls forward", "2024-01-15T24:00:00Z", "Jan 16, 2024 08:00"},
		{"end of day with millis", "2024-12-31T24:00:00.000Z", "Jan 1, 2025 08:00"},
		{"hour 24 with minutes", "2024-01-15T24:30:00Z", "undefined NaN, NaN NaN:NaN"},
		{"date toString", "Mon Jan 15 2024 08:00:00 GMT+0800 (China Standard Time)", "Jan 15, 2024 08:00"},
		{"garbage", "not a date", "undefined NaN, NaN NaN:NaN"},
		{"empty", "", "undefined NaN, NaN NaN:NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatTimeIgnoresLocation(t *testing.T) {
	instant := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	ny := time.FixedZone("EST", -5*60*60)

	assert.Equal(t, "Jan 15, 2024 08:00", FormatTime(instant))
	assert.Equal(t, FormatTime(instant), FormatTime(instant.In(ny)))
	assert.Equal(t, FormatTime(instant), FormatTime(instant.In(time.Local)))
}

func TestFormatUnixMilli(t *testing.T) {
	assert.Equal(t, "Jan 1, 1970 08:00", FormatUnixMilli(0))
	assert.Equal(t, "Jan 15, 2024 08:00", FormatUnixMilli(1705276800000))
	assert.Equal(t, "Dec 31, 1969 23:59", FormatUnixMilli(-8*60*60*1000-60*1000))
}

func TestFormatUnixMilli_Range(t *testing.T) {
	const limit = 8_640_000_000_000_000
	const shift = 8 * 60 * 60 * 1000

	assert.Equal(t, "Sep 13, 275760 00:00", FormatUnixMilli(limit-shift))
	assert.Equal(t, "undefined NaN, NaN NaN:NaN", FormatUnixMilli(limit-shift+1), "shifted instant past the limit")
	assert.Equal(t, "undefined NaN, NaN NaN:NaN", FormatUnixMilli(limit+1))
	assert.Equal(t, "Apr 20, -271821 08:00", FormatUnixMilli(-limit))
	assert.Equal(t, "undefined NaN, NaN NaN:NaN", FormatUnixMilli(-limit-1))
}

func TestFormattersArePure(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "2 KB", FormatFileSize(1536))
			assert.Equal(t, "he...lo", TruncateString("hello", 2, 2))
			assert.Equal(t, "Jan 15, 2024 08:00", FormatDate("2024-01-15T00:00:00.000Z"))
		}()
	}
	wg.Wait()
}
