package render

import (
	"math"
	"strconv"

	"weather-card/models"
)

// kphPerMeterPerSecond converts m/s to km/h
const kphPerMeterPerSecond = 3.6

// Card holds the display values of one successful lookup
type Card struct {
	City        string `json:"city"`
	Temperature string `json:"temp"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
	Background  string `json:"background"`

	TemperatureC int `json:"temperatureC"`
	WindKPH      int `json:"windKph"`
}

// NewCard formats an API response into display values.
// Temperature is assumed to already be in Celsius.
func NewCard(w models.CurrentWeather) Card {
	card := Card{
		City:       w.Name,
		Condition:  w.ConditionKeyword(),
		Icon:       IconFor(w.ConditionKeyword()),
		Background: BackgroundFor(w.ConditionKeyword()),
	}
	if card.City == "" {
		card.City = "-"
	}

	var temp, humidity float64
	if w.Main != nil {
		temp = w.Main.Temp
		humidity = w.Main.Humidity
	}

	card.TemperatureC = RoundHalfUp(temp)
	card.Temperature = strconv.Itoa(card.TemperatureC) + "°C"
	card.Humidity = strconv.FormatFloat(humidity, 'f', -1, 64) + "%"

	card.WindKPH = RoundHalfUp(MetersPerSecondToKPH(w.WindSpeed()))
	card.Wind = strconv.Itoa(card.WindKPH) + " km/h"

	return card
}

// RoundHalfUp rounds to the nearest integer, with halves going towards +Inf (-2.5 becomes -2)
func RoundHalfUp(x float64) int {
	floor := math.Floor(x)
	if x-floor >= 0.5 {
		floor++
	}
	return int(floor)
}

// MetersPerSecondToKPH converts a wind speed from m/s to km/h
func MetersPerSecondToKPH(ms float64) float64 {
	return ms * kphPerMeterPerSecond
}
