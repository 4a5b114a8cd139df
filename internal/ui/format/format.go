// Package format renders numbers, percentages and durations for display in
// the player's locale.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats values for one locale.
type Printer struct {
	p *message.Printer
}

// New returns a Printer for tag.
func New(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

// Default returns an English Printer.
func Default() *Printer {
	return New(language.English)
}

// Number renders n with locale digit grouping, e.g. 12,400.
func (p *Printer) Number(n int) string {
	return p.p.Sprintf("%d", n)
}

// Points renders a signed score delta, e.g. +400.
func (p *Printer) Points(n int) string {
	if n > 0 {
		return "+" + p.Number(n)
	}
	return p.Number(n)
}

// Percent renders a 0..1 ratio as a whole percentage, e.g. 90%.
func (p *Printer) Percent(ratio float64) string {
	return p.p.Sprintf("%.0f%%", ratio*100)
}

// Duration renders d as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
