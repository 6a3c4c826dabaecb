package render

const (
	// DefaultIcon is shown for conditions without their own icon
	DefaultIcon = "weather/Imagenes-del-clima/clouds.png"
	// DefaultBackground is used for conditions without their own background
	DefaultBackground = "rain-6812_256.gif"
)

// Snow has a background but no icon of its own.
var conditionIcons = map[string]string{
	"Clouds":  "weather/Imagenes-del-clima/clouds.png",
	"Clear":   "weather/Imagenes-del-clima/clear.png",
	"Rain":    "weather/Imagenes-del-clima/rain.png",
	"Drizzle": "weather/Imagenes-del-clima/drizzle.png",
	"Mist":    "weather/Imagenes-del-clima/mist.png",
}

var conditionBackgrounds = map[string]string{
	"Clear":   "weather/Imagenes-del-clima/soleado.gif",
	"Clouds":  "rain-6812_256.gif",
	"Rain":    "rain-6812_256.gif",
	"Drizzle": "rain-6812_256.gif",
	"Mist":    "weather/Imagenes-del-clima/fondo1.png",
	"Snow":    "weather/Imagenes-del-clima/fondo1.png",
}

// IconFor returns the icon path for a condition keyword such as "Rain"
func IconFor(keyword string) string {
	if icon, ok := conditionIcons[keyword]; ok {
		return icon
	}
	return DefaultIcon
}

// BackgroundFor returns the background image path for a condition keyword
func BackgroundFor(keyword string) string {
	if bg, ok := conditionBackgrounds[keyword]; ok {
		return bg
	}
	return DefaultBackground
}
