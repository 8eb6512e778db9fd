package conditions

import (
	"math"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

// Фазы луны в порядке цикла, score отражает типичную активность рыбы
var moonPhases = []api.MoonPhase{
	{Name: "New Moon", Icon: "new", Fishing: "Excellent - Peak feeding activity", Score: 95},
	{Name: "Waxing Crescent", Icon: "waxing-crescent", Fishing: "Good - Building activity", Score: 70},
	{Name: "First Quarter", Icon: "first-quarter", Fishing: "Good - Moderate activity", Score: 65},
	{Name: "Waxing Gibbous", Icon: "waxing-gibbous", Fishing: "Fair - Activity declining", Score: 55},
	{Name: "Full Moon", Icon: "full", Fishing: "Excellent - Night feeding heavy", Score: 90},
	{Name: "Waning Gibbous", Icon: "waning-gibbous", Fishing: "Fair - Try early AM", Score: 55},
	{Name: "Last Quarter", Icon: "last-quarter", Fishing: "Good - Activity returning", Score: 65},
	{Name: "Waning Crescent", Icon: "waning-crescent", Fishing: "Good - Building to new moon", Score: 75},
}

// MoonPhase returns the lunar phase for the given date using a julian day
// approximation against a known new moon epoch. Accuracy within a day is
// plenty for a fishing forecast.
func MoonPhase(date time.Time) api.MoonPhase {
	year, month, day := date.Year(), int(date.Month()), date.Day()

	c, e := year, month
	if month < 3 {
		c = year - 1
		e = month + 12
	}

	jd := math.Floor(365.25*float64(c)) + math.Floor(30.6001*float64(e+1)) + float64(day) - 694039.09
	jd /= 29.53059

	phase := int(math.Round((jd-math.Floor(jd))*8)) % 8
	return moonPhases[phase]
}
