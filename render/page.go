package render

// Page is the set of elements a lookup writes into
type Page interface {
	// Alert shows a blocking user-facing notice, used for invalid input
	Alert(msg string)
	// Reset hides the error element and the weather block before a request
	Reset()
	// ShowError writes msg into the error element and shows it
	ShowError(msg string)
	// ShowWeather fills the weather block from card, shows it and hides the error element
	ShowWeather(card Card)
}

// Element is the text and visibility of one page element
type Element struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// State is an in-memory page, rendered by the HTML template and the JSON API
type State struct {
	AlertText  string  `json:"alert,omitempty"`
	Error      Element `json:"error"`
	Weather    bool    `json:"weatherVisible"`
	City       string  `json:"city"`
	Temp       string  `json:"temp"`
	Humidity   string  `json:"humidity"`
	Wind       string  `json:"wind"`
	Icon       string  `json:"icon"`
	Condition  string  `json:"condition,omitempty"`
	Background string  `json:"background,omitempty"` // last applied background, kept across errors
}

// Ensure *State implements Page
var _ Page = (*State)(nil)

// NewState returns a page with the error element and weather block hidden
func NewState() *State {
	return &State{}
}

// Alert records msg as the pending alert
func (s *State) Alert(msg string) {
	s.AlertText = msg
}

// Reset clears the alert and hides the error element and the weather block
func (s *State) Reset() {
	s.AlertText = ""
	s.Error.Visible = false
	s.Weather = false
}

// ShowError sets the error text and shows it
func (s *State) ShowError(msg string) {
	s.Error = Element{Text: msg, Visible: true}
}

// ShowWeather copies the card into the weather block and shows it
func (s *State) ShowWeather(card Card) {
	s.City = card.City
	s.Temp = card.Temperature
	s.Humidity = card.Humidity
	s.Wind = card.Wind
	s.Icon = card.Icon
	s.Condition = card.Condition
	s.Background = card.Background
	s.Weather = true
	s.Error.Visible = false
}
