// Package lang defines the closed set of languages the voice pipeline
// understands. English is always the fallback for localized content.
package lang

import "strings"

const (
	English Language = "en"
	Yoruba  Language = "yo"
	Igbo    Language = "ig"
	Hausa   Language = "ha"
)

// Language is a supported language code.
type Language string

// All returns every supported language. English is first and is the
// fallback arm for all localized lookups.
func All() []Language {
	return []Language{English, Yoruba, Igbo, Hausa}
}

// Parse parses a language code, tolerating case and region subtags
// ("EN", "yo-NG"). The second return is false for unrecognized codes.
func Parse(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	switch l := Language(code); l {
	case English, Yoruba, Igbo, Hausa:
		return l, true
	}
	return English, false
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case English, Yoruba, Igbo, Hausa:
		return true
	}
	return false
}

// Name returns the English name of the language.
func (l Language) Name() string {
	switch l {
	case Yoruba:
		return "Yoruba"
	case Igbo:
		return "Igbo"
	case Hausa:
		return "Hausa"
	default:
		return "English"
	}
}

func (l Language) String() string {
	return string(l)
}
