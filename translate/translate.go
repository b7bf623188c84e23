// This file is part of aluoracle.
//
// aluoracle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// aluoracle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with aluoracle.  If not, see <https://www.gnu.org/licenses/>.

// Package translate prints messages for the user's locale. Numbers are
// grouped according to the locale's conventions, which makes the large
// counts in sweep and performance summaries easier to read.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/retrocheck/aluoracle/logger"
)

// printer for the user's locale
var printer *Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer, err = NewPrinter(message.MatchLanguage(locales...).String())
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
		printer = &Printer{p: message.NewPrinter(language.AmericanEnglish)}
	}
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.From(key, args...)
}

// Printer translates for a specific language.
type Printer struct {
	p *message.Printer
}

// NewPrinter is the preferred method of initialisation for the Printer type.
// The tag is a BCP 47 language tag. An unrecognised tag is an error.
func NewPrinter(tag string) (*Printer, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, err
	}
	return &Printer{p: message.NewPrinter(t)}, nil
}

// From an en-US Sprintf() format, translate to string.
func (p *Printer) From(key message.Reference, args ...any) string {
	return p.p.Sprintf(key, args...)
}
