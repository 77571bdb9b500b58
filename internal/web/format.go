package web

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders silver amounts and item icons for the pages
type Formatter struct {
	printer     *message.Printer
	iconBaseURL string
	iconQuality int
}

// NewFormatter creates a Formatter for Brazilian Portuguese number grouping.
// iconBaseURL is the render service prefix the item id is appended to.
func NewFormatter(iconBaseURL string, iconQuality int) *Formatter {
	if iconBaseURL != "" && !strings.HasSuffix(iconBaseURL, "/") {
		iconBaseURL += "/"
	}
	return &Formatter{
		printer:     message.NewPrinter(language.BrazilianPortuguese),
		iconBaseURL: iconBaseURL,
		iconQuality: iconQuality,
	}
}

// Silver formats an amount rounded to whole silver, e.g. "1.250.000"
func (f *Formatter) Silver(amount decimal.Decimal) string {
	return f.printer.Sprintf("%d", amount.Round(0).IntPart())
}

// Count formats an integer with thousands grouping
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// IconURL returns the render URL of an item id, or "" when the id is empty
func (f *Formatter) IconURL(externalID string) string {
	if externalID == "" || f.iconBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s%s.png?quality=%d", f.iconBaseURL, url.PathEscape(externalID), f.iconQuality)
}
