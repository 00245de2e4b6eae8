package display

import (
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatForecastDate(t *testing.T) {
	tests := []struct {
		date  string
		style DateStyle
		want  string
	}{
		{"2025-11-03", DateShort, "Lun 3 Nov"},
		{"2025-11-03", DateLong, "Lunes 3 de Noviembre"},
		{"2025-09-17", DateShort, "Mié 17 Sept"},
		{"2025-09-17", DateLong, "Miércoles 17 de Septiembre"},
		{"2026-01-31", DateShort, "Sáb 31 Ene"},
		{"2026-01-31", DateLong, "Sábado 31 de Enero"},
		{"2024-02-29", DateLong, "Jueves 29 de Febrero"},
		{"2025-12-07", DateShort, "Dom 7 Dic"},
	}

	for _, tt := range tests {
		t.Run(tt.date+"/"+tt.style.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForecastDate(tt.date, tt.style))
		})
	}
}

func TestFormatForecastDate_MalformedInputUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"2025-11-3",
		"2025-1-03",
		"25-11-03",
		"2025-11-03 ",
		" 2025-11-03",
		"2025/11/03",
		"2025-11-03T00:00:00Z",
		"abcd-ef-gh",
		"2025-13-01",
		"2025-02-30",
		"20251103",
		"today",
	}

	for _, in := range inputs {
		for _, style := range []DateStyle{DateShort, DateLong} {
			assert.Equal(t, in, FormatForecastDate(in, style), "%q/%s", in, style)
		}
	}
}

func TestFormatForecastDate_AllDatesOfYear(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		iso := d.Format("2006-01-02")
		day := strconv.Itoa(d.Day())

		for _, style := range []DateStyle{DateShort, DateLong} {
			got := FormatForecastDate(iso, style)
			if !assert.NotEmpty(t, got) {
				continue
			}
			first, _ := utf8.DecodeRuneInString(got)
			assert.True(t, unicode.IsUpper(first), "%s -> %q", iso, got)
			assert.Contains(t, strings.Fields(got), day, "%s -> %q", iso, got)
			assert.NotEqual(t, iso, got)
		}
	}
}

func TestParseDateStyle(t *testing.T) {
	style, ok := ParseDateStyle("")
	assert.True(t, ok)
	assert.Equal(t, DateShort, style)

	style, ok = ParseDateStyle("LONG")
	assert.True(t, ok)
	assert.Equal(t, DateLong, style)

	_, ok = ParseDateStyle("medium")
	assert.False(t, ok)
}
