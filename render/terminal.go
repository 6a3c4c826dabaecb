package render

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Terminal renders page operations as plain text lines
type Terminal struct {
	out io.Writer
	err io.Writer
}

// Ensure *Terminal implements Page
var _ Page = (*Terminal)(nil)

// NewTerminal writes weather to out and alerts and errors to errOut
func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{out: out, err: errOut}
}

// Alert prints msg to the error writer
func (t *Terminal) Alert(msg string) {
	fmt.Fprintf(t.err, "! %s\n", msg)
}

// Reset is a no-op, nothing has been printed yet
func (t *Terminal) Reset() {}

// ShowError prints msg to the error writer
func (t *Terminal) ShowError(msg string) {
	fmt.Fprintln(t.err, msg)
}

// ShowWeather prints the card as an aligned block
func (t *Terminal) ShowWeather(card Card) {
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "City:\t%s\n", card.City)
	fmt.Fprintf(tw, "Temperature:\t%s\n", card.Temperature)
	fmt.Fprintf(tw, "Humidity:\t%s\n", card.Humidity)
	fmt.Fprintf(tw, "Wind:\t%s\n", card.Wind)
	if card.Condition != "" {
		fmt.Fprintf(tw, "Condition:\t%s\n", card.Condition)
	}
	fmt.Fprintf(tw, "Icon:\t%s\n", card.Icon)
	fmt.Fprintf(tw, "Background:\t%s\n", card.Background)
	tw.Flush()
}
