// Package display turns raw provider fields into presentation tokens and
// localized strings. Everything here is pure.
package display

import "strings"

// IconToken names an icon in the client's icon set.
type IconToken string

const (
	IconNewMoon        IconToken = "moonphase.new.moon"
	IconFullMoon       IconToken = "moonphase.full.moon"
	IconFirstQuarter   IconToken = "moonphase.first.quarter"
	IconLastQuarter    IconToken = "moonphase.last.quarter"
	IconWaxingCrescent IconToken = "moonphase.waxing.crescent"
	IconWaxingGibbous  IconToken = "moonphase.waxing.gibbous"
	IconWaningCrescent IconToken = "moonphase.waning.crescent"
	IconWaningGibbous  IconToken = "moonphase.waning.gibbous"
	IconMoonFallback   IconToken = "moon.fill"

	IconSunUp      IconToken = "sun.max.fill"
	IconSunDown    IconToken = "moon.stars.fill"
	IconMoonUp     IconToken = "moon.fill"
	IconMoonHidden IconToken = "moon.zzz.fill"
)

// moonPhases is evaluated in order; the first keyword found wins.
var moonPhases = []struct {
	keyword string
	icon    IconToken
}{
	{"new", IconNewMoon},
	{"full", IconFullMoon},
	{"first quarter", IconFirstQuarter},
	{"last quarter", IconLastQuarter},
	{"waxing crescent", IconWaxingCrescent},
	{"waxing gibbous", IconWaxingGibbous},
	{"waning crescent", IconWaningCrescent},
	{"waning gibbous", IconWaningGibbous},
}

// ClassifyMoonPhase maps the provider's free-text phase name to an icon.
// Unknown text yields IconMoonFallback.
func ClassifyMoonPhase(phase string) IconToken {
	lowered := strings.ToLower(phase)
	for _, p := range moonPhases {
		if strings.Contains(lowered, p.keyword) {
			return p.icon
		}
	}
	return IconMoonFallback
}

func SunIcon(isSunUp int) IconToken {
	if isSunUp == 1 {
		return IconSunUp
	}
	return IconSunDown
}

func MoonVisibilityIcon(isMoonUp int) IconToken {
	if isMoonUp == 1 {
		return IconMoonUp
	}
	return IconMoonHidden
}

// WholeDegrees drops the fractional part the way the forecast rows show
// temperatures and wind speed.
func WholeDegrees(v float64) int {
	return int(v)
}
