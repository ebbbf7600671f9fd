package numeral

import "github.com/ojaledger/ojaledger/pkg/lang"

// entry is one lexicon word: its value, and whether it is a multiplier
// (hundred/thousand class) rather than a plain magnitude word.
type entry struct {
	value int64
	mult  bool
}

// lexicon maps folded spoken-number words to entries. conj holds the
// language's additive conjunctions, which flush the accumulator.
type lexicon struct {
	words map[string]entry
	conj  map[string]bool
}

// Lexicon keys are stored pre-folded (lowercase, no diacritics); see Fold.
var lexicons = map[lang.Language]lexicon{
	lang.English: {
		words: map[string]entry{
			"zero": {0, false}, "one": {1, false}, "two": {2, false},
			"three": {3, false}, "four": {4, false}, "five": {5, false},
			"six": {6, false}, "seven": {7, false}, "eight": {8, false},
			"nine": {9, false}, "ten": {10, false}, "eleven": {11, false},
			"twelve": {12, false}, "thirteen": {13, false},
			"fourteen": {14, false}, "fifteen": {15, false},
			"sixteen": {16, false}, "seventeen": {17, false},
			"eighteen": {18, false}, "nineteen": {19, false},
			"twenty": {20, false}, "thirty": {30, false},
			"forty": {40, false}, "fifty": {50, false},
			"sixty": {60, false}, "seventy": {70, false},
			"eighty": {80, false}, "ninety": {90, false},
			"hundred":  {100, true},
			"thousand": {1000, true},
			"million":  {1_000_000, true},
		},
		conj: map[string]bool{"and": true},
	},
	lang.Yoruba: {
		words: map[string]entry{
			"okan": {1, false}, "ookan": {1, false}, "eni": {1, false},
			"meji": {2, false}, "meta": {3, false}, "merin": {4, false},
			"marun": {5, false}, "maruun": {5, false}, "mefa": {6, false},
			"meje": {7, false}, "mejo": {8, false}, "mesan": {9, false},
			"mewa": {10, false}, "ogun": {20, false}, "ogbon": {30, false},
			"aadota": {50, false}, "ogota": {60, false}, "aadorin": {70, false},
			"ogorin": {80, false}, "aadorun": {90, false},
			"ogorun": {100, true}, "igba": {200, false},
			"egberun": {1000, true}, "egbaa": {2000, false},
			"milionu": {1_000_000, true},
		},
		conj: map[string]bool{"ati": true, "le": true},
	},
	lang.Igbo: {
		words: map[string]entry{
			"otu": {1, false}, "abuo": {2, false}, "ato": {3, false},
			"ano": {4, false}, "ise": {5, false}, "isii": {6, false},
			"asaa": {7, false}, "asato": {8, false}, "itoolu": {9, false},
			"itolu": {9, false},
			// Igbo tens, hundreds and thousands are multiplicative:
			// "iri abụọ" is ten-two, i.e. 20.
			"iri":  {10, true},
			"nari": {100, true},
			"puku": {1000, true},
			"nde":  {1_000_000, true},
		},
		conj: map[string]bool{"na": true},
	},
	lang.Hausa: {
		words: map[string]entry{
			"daya": {1, false}, "ɗaya": {1, false}, "biyu": {2, false},
			"uku": {3, false}, "hudu": {4, false}, "huɗu": {4, false},
			"biyar": {5, false}, "shida": {6, false}, "bakwai": {7, false},
			"takwas": {8, false}, "tara": {9, false}, "goma": {10, false},
			"ashirin": {20, false}, "talatin": {30, false},
			"arbain": {40, false}, "hamsin": {50, false},
			"sittin": {60, false}, "sabain": {70, false},
			"tamanin": {80, false}, "casain": {90, false},
			"dari":    {100, true},
			"dubu":    {1000, true},
			"miliyan": {1_000_000, true},
		},
		conj: map[string]bool{"da": true},
	},
}
