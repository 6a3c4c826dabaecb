package models

// CurrentWeather represents the body of a current weather response
type CurrentWeather struct {
	Name    string        `json:"name"`
	Main    *MainReadings `json:"main"`
	Wind    *Wind         `json:"wind"`
	Weather []Condition   `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// MainReadings holds the core measurements, temperature in the units the API was asked for
type MainReadings struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"` // percentage
	Pressure float64 `json:"pressure"` // in hPa
}

// Wind holds wind readings as reported by the API
type Wind struct {
	Speed float64 `json:"speed"` // in m/s
	Deg   int     `json:"deg"`
}

// Condition is one entry of the weather array
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"` // keyword such as Clear, Clouds, Rain
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ConditionKeyword returns the primary condition keyword, or "" when the API sent none
func (w CurrentWeather) ConditionKeyword() string {
	if len(w.Weather) == 0 {
		return ""
	}
	return w.Weather[0].Main
}

// WindSpeed returns the wind speed in m/s, treating a missing wind block as calm
func (w CurrentWeather) WindSpeed() float64 {
	if w.Wind == nil {
		return 0
	}
	return w.Wind.Speed
}
