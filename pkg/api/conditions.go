package api

// Weather представляет текущую погоду в точке
type Weather struct {
	Conditions    string  `json:"weather"` // короткое описание: Clear, Rain, ...
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	WindDirection string  `json:"wind_direction"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Temperature   float64 `json:"temperature"` // °F
	FeelsLike     float64 `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"` // mb
	WindSpeed     float64 `json:"wind_speed"`
	WindDeg       int     `json:"wind_deg"`
	Clouds        int     `json:"clouds"`     // % покрытия
	Visibility    int     `json:"visibility"` // мили
}

// MoonPhase представляет фазу луны и ее влияние на клев
type MoonPhase struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Fishing string `json:"fishing"` // подсказка по активности рыбы
	Score   int    `json:"score"`   // 0..100
}

// RiverReading представляет последние показания гидропоста USGS
type RiverReading struct {
	SiteName    string   `json:"site_name"`
	SiteID      string   `json:"site_id"`
	FlowStatus  string   `json:"flow_status"` // low | normal | high | unknown
	FlowDisplay string   `json:"flow_display,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Discharge   *float64 `json:"discharge,omitempty"`   // cfs
	GageHeight  *float64 `json:"gage_height,omitempty"` // ft
	WaterTempC  *float64 `json:"water_temp_c,omitempty"`
	WaterTempF  *float64 `json:"water_temp_f,omitempty"`
}

// ScoreFactor представляет один фактор итоговой оценки условий
type ScoreFactor struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Impact int    `json:"impact"` // вклад в итоговый балл, может быть отрицательным
	Good   *bool  `json:"good"`   // nil = нейтральный фактор
	Note   string `json:"note"`
}

// FishingWindow представляет рекомендованное время ловли
type FishingWindow struct {
	Period  string `json:"period"`
	Time    string `json:"time"`
	Quality string `json:"quality"` // excellent | good | fair
	Note    string `json:"note"`
}

// ConditionsResponse представляет сводку условий ловли
type ConditionsResponse struct {
	Weather   Weather         `json:"weather"`
	Moon      MoonPhase       `json:"moon"`
	River     *RiverReading   `json:"river,omitempty"`
	Factors   []ScoreFactor   `json:"factors"`
	BestTimes []FishingWindow `json:"best_times"`
	Rating    string          `json:"rating"` // Excellent | Good | Fair | Poor
	Summary   string          `json:"summary"`
	Score     int             `json:"score"` // 0..100
}
