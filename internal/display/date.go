package display

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const isoDateLayout = "2006-01-02"

type DateStyle int

const (
	// DateShort renders "Lun 3 Nov".
	DateShort DateStyle = iota
	// DateLong renders "Lunes 3 de Noviembre".
	DateLong
)

func (s DateStyle) String() string {
	if s == DateLong {
		return "long"
	}
	return "short"
}

// ParseDateStyle accepts "short" and "long"; an empty string means short.
func ParseDateStyle(s string) (DateStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return DateShort, true
	case "long":
		return DateLong, true
	}
	return DateShort, false
}

var mexicanSpanish = language.MustParse("es-MX")

var (
	weekdays      = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	weekdaysShort = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	months        = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	monthsShort   = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}
)

// FormatForecastDate renders a YYYY-MM-DD date with Mexican Spanish names.
// Input that does not match the layout exactly is returned unchanged.
func FormatForecastDate(isoDate string, style DateStyle) string {
	if len(isoDate) != len(isoDateLayout) {
		return isoDate
	}
	t, err := time.Parse(isoDateLayout, isoDate)
	if err != nil {
		return isoDate
	}

	day := strconv.Itoa(t.Day())
	var words []string
	switch style {
	case DateLong:
		words = []string{weekdays[t.Weekday()], day, "de", months[t.Month()-1]}
	default:
		words = []string{weekdaysShort[t.Weekday()], day, monthsShort[t.Month()-1]}
	}

	return capitalize(words)
}

// capitalize title-cases every word except the particle "de", which Spanish
// keeps lowercase.
func capitalize(words []string) string {
	caser := cases.Title(mexicanSpanish)
	for i, w := range words {
		if w == "de" {
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
