package conditions

import (
	"fmt"

	"github.com/iudanet/riffle/pkg/api"
)

// Rating thresholds
const (
	scoreExcellent = 80
	scoreGood      = 65
	scoreFair      = 45
)

// Forecast is the combined fishing outlook for a point and, optionally,
// a river gauge.
type Forecast struct {
	Rating  string
	Summary string
	Factors []api.ScoreFactor
	Score   int
}

func good(v bool) *bool { return &v }

// Score weighs weather, moon phase and river flow into a 0-100 outlook.
// The baseline is 50, each factor shifts it and is reported so the caller
// can show why the day looks the way it does.
func Score(weather api.Weather, moon api.MoonPhase, river *api.RiverReading) Forecast {
	score := 50
	factors := []api.ScoreFactor{}

	add := func(f api.ScoreFactor) {
		score += f.Impact
		factors = append(factors, f)
	}

	// Давление: стабильное среднее лучше всего для поверхностной активности
	switch {
	case weather.Pressure >= 1010 && weather.Pressure <= 1020:
		add(api.ScoreFactor{
			Name: "Pressure", Value: fmt.Sprintf("%d mb", weather.Pressure),
			Impact: 12, Good: good(true), Note: "Stable - ideal for surface activity",
		})
	case weather.Pressure < 1005:
		add(api.ScoreFactor{
			Name: "Pressure", Value: fmt.Sprintf("%d mb", weather.Pressure),
			Impact: -8, Good: good(false), Note: "Low - fish may be sluggish",
		})
	case weather.Pressure > 1025:
		add(api.ScoreFactor{
			Name: "Pressure", Value: fmt.Sprintf("%d mb", weather.Pressure),
			Impact: -8, Good: good(false), Note: "High - fish holding deep",
		})
	default:
		add(api.ScoreFactor{
			Name: "Pressure", Value: fmt.Sprintf("%d mb", weather.Pressure),
			Impact: 0, Note: "Neutral conditions",
		})
	}

	// Ветер: легкая рябь помогает, сильный ветер мешает забросу
	switch {
	case weather.WindSpeed >= 3 && weather.WindSpeed <= 12:
		add(api.ScoreFactor{
			Name: "Wind", Value: fmt.Sprintf("%.0f mph %s", weather.WindSpeed, weather.WindDirection),
			Impact: 8, Good: good(true), Note: "Light wind breaks surface, helps presentations",
		})
	case weather.WindSpeed > 20:
		add(api.ScoreFactor{
			Name: "Wind", Value: fmt.Sprintf("%.0f mph %s", weather.WindSpeed, weather.WindDirection),
			Impact: -15, Good: good(false), Note: "Too windy for good casting",
		})
	case weather.WindSpeed < 3:
		add(api.ScoreFactor{
			Name: "Wind", Value: fmt.Sprintf("%.0f mph", weather.WindSpeed),
			Impact: -3, Note: "Very calm - fish more line-shy",
		})
	}

	// Облачность: пасмурно чаще всего лучше
	switch {
	case weather.Clouds >= 50 && weather.Clouds <= 90:
		add(api.ScoreFactor{
			Name: "Clouds", Value: fmt.Sprintf("%d%%", weather.Clouds),
			Impact: 10, Good: good(true), Note: "Overcast - fish feel safer feeding",
		})
	case weather.Clouds < 20:
		add(api.ScoreFactor{
			Name: "Clouds", Value: fmt.Sprintf("%d%%", weather.Clouds),
			Impact: -5, Good: good(false), Note: "Clear skies - fish in shade",
		})
	}

	// Температура воздуха: диапазон комфортный для форели и вылетов
	switch {
	case weather.Temperature >= 45 && weather.Temperature <= 68:
		add(api.ScoreFactor{
			Name: "Air Temp", Value: fmt.Sprintf("%.0f°F", weather.Temperature),
			Impact: 10, Good: good(true), Note: "Comfortable range for hatches",
		})
	case weather.Temperature > 85 || weather.Temperature < 35:
		add(api.ScoreFactor{
			Name: "Air Temp", Value: fmt.Sprintf("%.0f°F", weather.Temperature),
			Impact: -12, Good: good(false), Note: "Extreme temps reduce activity",
		})
	}

	// Луна: вклад пропорционален отклонению фазы от среднего
	moonImpact := (moon.Score - 50) / 5
	add(api.ScoreFactor{
		Name: "Moon", Value: moon.Name,
		Impact: moonImpact, Good: good(moonImpact > 0), Note: moon.Fishing,
	})

	// Уровень воды, если есть данные гидропоста
	if river != nil {
		switch river.FlowStatus {
		case "normal":
			add(api.ScoreFactor{
				Name: "Flow", Value: river.FlowDisplay,
				Impact: 8, Good: good(true), Note: "Normal flow - ideal wading",
			})
		case "high":
			add(api.ScoreFactor{
				Name: "Flow", Value: river.FlowDisplay,
				Impact: -10, Good: good(false), Note: "High water - fish streamers deep",
			})
		case "low":
			add(api.ScoreFactor{
				Name: "Flow", Value: river.FlowDisplay,
				Impact: -5, Good: good(false), Note: "Low flow - fish early/late, long leaders",
			})
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Forecast{
		Score:   score,
		Rating:  rating(score),
		Factors: factors,
		Summary: summary(score),
	}
}

func rating(score int) string {
	switch {
	case score >= scoreExcellent:
		return "Excellent"
	case score >= scoreGood:
		return "Good"
	case score >= scoreFair:
		return "Fair"
	default:
		return "Poor"
	}
}

func summary(score int) string {
	switch {
	case score >= scoreExcellent:
		return "Outstanding conditions! Hatches likely, fish should be active and looking up. Get on the water!"
	case score >= scoreGood:
		return "Good fishing expected. Watch for hatch activity and be ready to match what's on the water."
	case score >= scoreFair:
		return "Fair conditions. Focus on nymphing or try streamers. Fish deeper structure and slower presentations."
	default:
		return "Challenging day ahead. Consider subsurface patterns, fish early/late, or try a different location."
	}
}

// BestTimes recommends fishing windows for the day. Dawn and evening are
// always included, the middle of the day depends on clouds and temperature.
func BestTimes(weather api.Weather, moon api.MoonPhase) []api.FishingWindow {
	times := []api.FishingWindow{{
		Period:  "Dawn",
		Time:    weather.Sunrise,
		Quality: "excellent",
		Note:    "Prime time - morning hatches and feeding",
	}}

	if weather.Clouds > 50 || weather.Temperature < 70 {
		times = append(times, api.FishingWindow{
			Period:  "Mid-Morning",
			Time:    "9:00 - 11:00 AM",
			Quality: "good",
			Note:    "Extended morning activity likely",
		})
	}

	if weather.Clouds > 70 {
		times = append(times, api.FishingWindow{
			Period:  "Midday",
			Time:    "11:00 AM - 2:00 PM",
			Quality: "fair",
			Note:    "Overcast helps keep fish active",
		})
	}

	if weather.Temperature >= 50 && weather.Temperature <= 75 {
		times = append(times, api.FishingWindow{
			Period:  "Afternoon",
			Time:    "3:00 - 5:00 PM",
			Quality: "good",
			Note:    "Building toward evening hatch",
		})
	}

	times = append(times, api.FishingWindow{
		Period:  "Evening",
		Time:    "5:00 PM - " + weather.Sunset,
		Quality: "excellent",
		Note:    "Prime time - spinner falls and evening risers",
	})

	if moon.Name == "Full Moon" {
		times = append(times, api.FishingWindow{
			Period:  "Night",
			Time:    "9:00 PM - 12:00 AM",
			Quality: "good",
			Note:    "Big fish feed under full moon",
		})
	}

	return times
}
