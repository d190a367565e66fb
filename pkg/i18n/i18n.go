// Package i18n holds the PT/EN message tables used by the contact pipeline
// and a single lookup function with one fallback rule: anything not available
// in the requested language is served in English.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported content language.
type Language string

const (
	PT Language = "pt"
	EN Language = "en"
)

// Default is the language assumed when a request does not name one.
const Default = PT

// Fallback is served for unsupported languages and missing keys.
const Fallback = EN

// Supported reports whether l has its own message table.
func (l Language) Supported() bool {
	_, ok := tables[l]
	return ok
}

func (l Language) String() string {
	return string(l)
}

// Parse resolves a raw language code from a request body or CLI flag.
// An empty value yields Default, a supported base language ("pt-BR" -> pt)
// yields that language, anything else yields Fallback.
func Parse(raw string) Language {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return Fallback
	}
	base, _ := tag.Base()

	l := Language(base.String())
	if !l.Supported() {
		return Fallback
	}
	return l
}

// Translate returns the message for key in lang, falling back to English.
// Unknown keys are returned verbatim so a missing entry is visible rather
// than silently empty.
func Translate(key Key, lang Language) string {
	if table, ok := tables[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := tables[Fallback][key]; ok {
		return msg
	}
	return string(key)
}

var matcher = language.NewMatcher([]language.Tag{language.Portuguese, language.English})

// FromAcceptLanguage picks a language from an Accept-Language header for
// responses produced before the request body is read.
func FromAcceptLanguage(header string) Language {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Fallback
	}
	if idx == 0 {
		return PT
	}
	return EN
}
