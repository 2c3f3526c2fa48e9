package cmd

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats report numbers for the user's locale (digit grouping).
var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.Debugf("locale detection failed: %v", err)
	}
	printer = newPrinter(locales)
}

// newPrinter builds a printer for the first locale that parses as a BCP 47
// tag, en-US if none does. POSIX names such as de_DE.UTF-8 are accepted.
func newPrinter(locales []string) *message.Printer {
	for _, l := range locales {
		tag, err := language.Parse(localeTag(l))
		if err != nil {
			logrus.Debugf("ignoring locale %q: %v", l, err)
			continue
		}
		return message.NewPrinter(tag)
	}
	return message.NewPrinter(language.AmericanEnglish)
}

// localeTag strips the codeset and modifier of a POSIX locale name and
// converts it to BCP 47 separators.
func localeTag(l string) string {
	if i := strings.IndexAny(l, ".@"); i >= 0 {
		l = l[:i]
	}
	return strings.ReplaceAll(l, "_", "-")
}
