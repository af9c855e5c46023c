// Package translate localises the message text of the intcode tools.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LOCALE_ENV overrides the detected user locale when set.
const LOCALE_ENV = "INTCODE_LOCALE"

var printer *message.Printer

func init() {
	printer = message.NewPrinter(message.MatchLanguage(Locales()...))
}

// Locales returns the preferred locales, most preferred first.
func Locales() (locales []string) {
	if env := os.Getenv(LOCALE_ENV); len(env) != 0 {
		return []string{env}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("intcode: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
