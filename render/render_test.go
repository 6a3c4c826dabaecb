package render

import (
	"bytes"
	"testing"

	"weather-card/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionTables(t *testing.T) {
	tests := []struct {
		keyword    string
		icon       string
		background string
	}{
		{"Clear", "weather/Imagenes-del-clima/clear.png", "weather/Imagenes-del-clima/soleado.gif"},
		{"Clouds", "weather/Imagenes-del-clima/clouds.png", "rain-6812_256.gif"},
		{"Rain", "weather/Imagenes-del-clima/rain.png", "rain-6812_256.gif"},
		{"Drizzle", "weather/Imagenes-del-clima/drizzle.png", "rain-6812_256.gif"},
		{"Mist", "weather/Imagenes-del-clima/mist.png", "weather/Imagenes-del-clima/fondo1.png"},
		{"Snow", DefaultIcon, "weather/Imagenes-del-clima/fondo1.png"},
		{"Thunderstorm", DefaultIcon, DefaultBackground},
		{"", DefaultIcon, DefaultBackground},
		{"clear", DefaultIcon, DefaultBackground},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.icon, IconFor(tt.keyword))
			assert.Equal(t, tt.background, BackgroundFor(tt.keyword))
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{21.4, 21},
		{21.5, 22},
		{-0.4, 0},
		{-2.5, -2},
		{-2.6, -3},
		{-0.5, 0},
		{0.49999999999999994, 0},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard(models.CurrentWeather{
		Name:    "Bogotá",
		Main:    &models.MainReadings{Temp: 14.7, Humidity: 82},
		Wind:    &models.Wind{Speed: 5},
		Weather: []models.Condition{{Main: "Rain"}},
	})

	assert.Equal(t, "Bogotá", card.City)
	assert.Equal(t, "15°C", card.Temperature)
	assert.Equal(t, 15, card.TemperatureC)
	assert.Equal(t, "82%", card.Humidity)
	assert.Equal(t, "18 km/h", card.Wind)
	assert.Equal(t, 18, card.WindKPH)
	assert.Equal(t, "Rain", card.Condition)
	assert.Equal(t, "weather/Imagenes-del-clima/rain.png", card.Icon)
	assert.Equal(t, "rain-6812_256.gif", card.Background)
}

func TestNewCard_MissingFields(t *testing.T) {
	card := NewCard(models.CurrentWeather{
		Main: &models.MainReadings{Temp: -3.2, Humidity: 55.5},
	})

	assert.Equal(t, "-", card.City)
	assert.Equal(t, "-3°C", card.Temperature)
	assert.Equal(t, "55.5%", card.Humidity)
	assert.Equal(t, "0 km/h", card.Wind)
	assert.Equal(t, "", card.Condition)
	assert.Equal(t, DefaultIcon, card.Icon)
	assert.Equal(t, DefaultBackground, card.Background)
}

func TestState_Lifecycle(t *testing.T) {
	s := NewState()
	s.ShowError("boom")
	assert.Equal(t, Element{Text: "boom", Visible: true}, s.Error)

	s.Reset()
	assert.False(t, s.Error.Visible)
	assert.False(t, s.Weather)

	s.ShowWeather(Card{City: "Lima", Temperature: "19°C", Background: "rain-6812_256.gif"})
	assert.True(t, s.Weather)
	assert.False(t, s.Error.Visible)
	assert.Equal(t, "Lima", s.City)

	// Background survives a later failure
	s.Reset()
	s.ShowError("again")
	assert.Equal(t, "rain-6812_256.gif", s.Background)
	assert.False(t, s.Weather)
}

func TestTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	term := NewTerminal(&out, &errOut)

	term.Alert("escribe una ciudad")
	term.ShowError("sin red")
	assert.Equal(t, "! escribe una ciudad\nsin red\n", errOut.String())

	term.ShowWeather(Card{City: "Quito", Temperature: "13°C", Humidity: "70%", Wind: "7 km/h", Icon: DefaultIcon, Background: DefaultBackground})
	assert.Contains(t, out.String(), "Quito")
	assert.Contains(t, out.String(), "13°C")
	assert.Contains(t, out.String(), "7 km/h")
	assert.NotContains(t, out.String(), "Condition:")
}

func TestHTML_Render(t *testing.T) {
	s := NewState()
	s.ShowWeather(NewCard(models.CurrentWeather{
		Name:    "Santiago",
		Main:    &models.MainReadings{Temp: 25.2, Humidity: 30},
		Wind:    &models.Wind{Speed: 2},
		Weather: []models.Condition{{Main: "Clear"}},
	}))

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Render(&buf, s, "Santiago"))

	html := buf.String()
	assert.Contains(t, html, `class="city">Santiago<`)
	assert.Contains(t, html, `25°C`)
	assert.Contains(t, html, `7 km/h`)
	assert.Contains(t, html, `src="weather/Imagenes-del-clima/clear.png"`)
	assert.Contains(t, html, `soleado.gif`)
	assert.NotContains(t, html, `class="error"`)
}

func TestHTML_RenderEscapesInput(t *testing.T) {
	s := NewState()
	s.ShowError("No existe la ciudad o error en la búsqueda.")

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Render(&buf, s, `<script>x</script>`))

	html := buf.String()
	assert.NotContains(t, html, `<script>x</script>`)
	assert.Contains(t, html, `class="error"`)
	assert.NotContains(t, html, `class="weather"`)
}
