// Package numeral converts spoken-number phrases in English, Yoruba, Igbo and
// Hausa into integers. A returned 0 means "no valid amount" and is the
// caller's signal, not an error.
package numeral

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

// folder strips combining marks so lexicon lookups are insensitive to tone
// and dot diacritics ("ẹgbẹ̀rún" and "egberun" are the same word).
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics and apostrophes. It is the
// normalization applied to every lexicon key and every looked-up token, and
// is shared by the intent and extraction packages for keyword matching.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == 'ʼ' || r == '’' {
			return -1
		}
		return r
	}, out)
}

// ToInteger parses a spoken-number phrase in the given language.
//
// The phrase is tokenized on whitespace, hyphens and commas. A running
// accumulator collects magnitude words and digit literals; multiplier words
// (hundred/thousand equivalents) scale it. A bare multiplier followed by a
// magnitude word multiplies instead of adding, which covers the
// multiplier-first word order of Yoruba, Igbo and Hausa ("dubu biyu" is
// thousand-two, i.e. 2000). The language's additive conjunction flushes the
// accumulator into the total.
//
// Traders code-switch freely, so a phrase that parses to nothing in its own
// language is retried against the English lexicon ("one thousand" spoken
// mid-Igbo still counts). If no token is recognized at all, the phrase is
// retried as a digit literal with thousands separators stripped. Failing
// that, 0 is returned.
func ToInteger(phrase string, language lang.Language) int64 {
	lex, ok := lexicons[language]
	if !ok {
		lex = lexicons[lang.English]
	}
	total, matched := parse(phrase, lex)
	if total == 0 && ok && language != lang.English {
		if enTotal, enMatched := parse(phrase, lexicons[lang.English]); enTotal != 0 {
			return enTotal
		} else if enMatched {
			matched = true
		}
	}
	if !matched {
		return literal(phrase)
	}
	return total
}

func parse(phrase string, lex lexicon) (int64, bool) {
	var (
		total   int64
		acc     int64
		matched bool
		// pending is set when a multiplier word arrived before its
		// multiplicand, as in "puku abụọ".
		pending bool
	)
	for _, tok := range tokenize(phrase) {
		if v, ok := digits(tok); ok {
			matched = true
			if pending {
				acc *= v
				pending = false
			} else {
				acc += v
			}
			continue
		}
		word := Fold(tok)
		if lex.conj[word] {
			total += acc
			acc = 0
			pending = false
			continue
		}
		e, ok := lex.words[word]
		if !ok {
			continue
		}
		matched = true
		switch {
		case e.mult && acc == 0:
			acc = e.value
			pending = true
		case e.mult:
			acc *= e.value
			pending = false
		case pending:
			acc *= e.value
			pending = false
		default:
			acc += e.value
		}
	}
	total += acc
	return total, matched
}

// tokenize splits a phrase on whitespace and hyphens and trims surrounding
// punctuation, so "2,000." survives as a single digit token.
func tokenize(phrase string) []string {
	fields := strings.FieldsFunc(phrase, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	toks := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ",.;:!?")
		if f != "" {
			toks = append(toks, f)
		}
	}
	return toks
}

// digits parses a token of ASCII digits, tolerating thousands separators
// ("2,000").
func digits(tok string) (int64, bool) {
	tok = strings.ReplaceAll(tok, ",", "")
	if tok == "" {
		return 0, false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// literal strips thousands-separator punctuation and spaces and parses the
// residue as an integer. Returns 0 when that fails.
func literal(phrase string) int64 {
	clean := strings.Map(func(r rune) rune {
		if r == ',' || r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(phrase))
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
