// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate localizes the user facing messages of cargobot.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FALLBACK is the locale used when the host reports none.
const FALLBACK = "en-US"

var printer = newPrinter(hostLocales())

// hostLocales returns the user's preferred locales, best match first.
func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("cargobot: locale: %v", err)
	}

	return
}

// newPrinter returns a message printer for the best of the locales.
func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{FALLBACK}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(FALLBACK)
	}

	return message.NewPrinter(tag)
}

// From formats an en-US Sprintf() style message in the user's locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
