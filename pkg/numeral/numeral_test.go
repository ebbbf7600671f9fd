package numeral

import (
	"fmt"
	"testing"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

func TestToInteger(t *testing.T) {
	tests := []struct {
		phrase   string
		language lang.Language
		want     int64
	}{
		// Digit literals behave like ParseInt in every language.
		{"0", lang.English, 0},
		{"2000", lang.English, 2000},
		{"2000", lang.Igbo, 2000},
		{"2,000", lang.Hausa, 2000},
		{"15000", lang.Yoruba, 15000},

		// English magnitude words.
		{"two thousand", lang.English, 2000},
		{"five hundred", lang.English, 500},
		{"three thousand and five hundred", lang.English, 3500},
		{"twenty five", lang.English, 25},
		{"one hundred and twenty", lang.English, 120},

		// Multiplier-first word order in the Nigerian languages.
		{"ẹgbẹ̀rún méjì", lang.Yoruba, 2000},
		{"egberun meji", lang.Yoruba, 2000},
		{"ọgọ́rùn-ún márùn", lang.Yoruba, 500},
		{"puku abụọ", lang.Igbo, 2000},
		{"puku abuo", lang.Igbo, 2000},
		{"nari ise", lang.Igbo, 500},
		{"iri abụọ", lang.Igbo, 20},
		{"dubu biyu", lang.Hausa, 2000},
		{"dari biyar", lang.Hausa, 500},
		{"dubu biyu da dari biyar", lang.Hausa, 2500},

		// Bare multipliers.
		{"thousand", lang.English, 1000},
		{"dubu", lang.Hausa, 1000},

		// Code-switched English numbers inside another language.
		{"one thousand", lang.Igbo, 1000},
		{"two thousand", lang.Hausa, 2000},

		// Unrecognized phrases give 0, not an error.
		{"how is the weather", lang.English, 0},
		{"", lang.English, 0},
		{"akpụ na anu", lang.Igbo, 0},

		// Unknown language falls back to the English lexicon.
		{"two thousand", lang.Language("fr"), 2000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.language, tt.phrase), func(t *testing.T) {
			if got := ToInteger(tt.phrase, tt.language); got != tt.want {
				t.Errorf("ToInteger(%q, %q) = %d, want %d", tt.phrase, tt.language, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ẸGBẸ̀RÚN", "egberun"},
		{"abụọ", "abuo"},
		{"saba'in", "sabain"},
		{"Ada", "ada"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
