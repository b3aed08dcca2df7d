// Package locale maps English message ids to display strings for the active
// language, gettext style: a message without a translation is shown as is.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message ids used by the filter dialog.
const (
	MsgJournalFilter = "Journal filter"
	MsgWhen          = "When"
	MsgCurrentBoot   = "Since system's boot"
	MsgPreviousBoot  = "On previous boot"
	MsgDates         = "Between these dates"
	MsgGeneratedBy   = "Generated by"
	MsgAnySource     = "Any source"
	MsgUnit          = "This systemd unit"
	MsgFile          = "This file (executable or device)"
	MsgCancel        = "Cancel"
	MsgOK            = "OK"
	MsgKeyHelp       = "Tab next · Space select · Enter confirm · Esc cancel"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
	language.Spanish,
}

var translations = map[language.Tag]map[string]string{
	language.German: {
		MsgJournalFilter: "Journal-Filter",
		MsgWhen:          "Wann",
		MsgCurrentBoot:   "Seit dem Systemstart",
		MsgPreviousBoot:  "Beim vorherigen Start",
		MsgDates:         "Zwischen diesen Daten",
		MsgGeneratedBy:   "Erzeugt von",
		MsgAnySource:     "Beliebige Quelle",
		MsgUnit:          "Diese systemd-Unit",
		MsgFile:          "Diese Datei (Programm oder Gerät)",
		MsgCancel:        "Abbrechen",
		MsgOK:            "OK",
		MsgKeyHelp:       "Tab weiter · Leertaste wählen · Enter bestätigen · Esc abbrechen",
	},
	language.Spanish: {
		MsgJournalFilter: "Filtro del diario",
		MsgWhen:          "Cuándo",
		MsgCurrentBoot:   "Desde el arranque del sistema",
		MsgPreviousBoot:  "En el arranque anterior",
		MsgDates:         "Entre estas fechas",
		MsgGeneratedBy:   "Generado por",
		MsgAnySource:     "Cualquier origen",
		MsgUnit:          "Esta unidad de systemd",
		MsgFile:          "Este archivo (ejecutable o dispositivo)",
		MsgCancel:        "Cancelar",
		MsgOK:            "Aceptar",
		MsgKeyHelp:       "Tab siguiente · Espacio seleccionar · Intro confirmar · Esc cancelar",
	},
}

var (
	builder = newCatalog()
	matcher = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for id, text := range msgs {
			// Message ids contain no verbs, so SetString cannot fail.
			_ = b.SetString(tag, id, text)
		}
	}
	return b
}

// Translator resolves message ids for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the supported language closest to lang, which
// may be a BCP 47 tag ("de-DE") or a POSIX locale name ("de_DE.UTF-8").
// Unknown or empty input selects English.
func New(lang string) *Translator {
	tag := language.English
	if want, ok := parsePOSIX(lang); ok {
		_, idx, conf := matcher.Match(want)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// FromEnv picks the language the same way libc does: LC_ALL, then
// LC_MESSAGES, then LANG.
func FromEnv() *Translator {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return New(v)
		}
	}
	return New("")
}

// Tag returns the language in use.
func (t *Translator) Tag() language.Tag { return t.tag }

// Translate returns the display string for msgid.
func (t *Translator) Translate(msgid string) string {
	return t.printer.Sprintf(msgid)
}

// CancelLabel returns the caption of the standard Cancel button.
func (t *Translator) CancelLabel() string { return t.Translate(MsgCancel) }

// OKLabel returns the caption of the standard OK button.
func (t *Translator) OKLabel() string { return t.Translate(MsgOK) }

// parsePOSIX converts "de_DE.UTF-8@euro" style names to a language tag.
// "C" and "POSIX" carry no language.
func parsePOSIX(s string) (language.Tag, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
