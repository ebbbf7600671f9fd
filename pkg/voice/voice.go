// Package voice picks the synthesis voice for a trader. The choice is a
// pure function of owner id and language, so the assistant always sounds the
// same to the same trader.
package voice

import (
	"hash/fnv"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

// Pools hold Gemini prebuilt voice names. None of the prebuilt voices are
// language-specific, so the pools shade by register instead: warmer voices
// for the Nigerian languages, the full set for English.
var pools = map[lang.Language][]string{
	lang.English: {"Kore", "Puck", "Charon", "Fenrir", "Aoede", "Leda", "Orus", "Zephyr"},
	lang.Yoruba:  {"Aoede", "Kore", "Leda", "Charon"},
	lang.Igbo:    {"Kore", "Orus", "Aoede", "Zephyr"},
	lang.Hausa:   {"Charon", "Leda", "Puck", "Kore"},
}

// Select returns the voice for one owner in one language. Unknown languages
// use the English pool.
func Select(language lang.Language, ownerID string) string {
	pool, ok := pools[language]
	if !ok {
		pool = pools[lang.English]
	}
	h := fnv.New32a()
	h.Write([]byte(ownerID))
	return pool[h.Sum32()%uint32(len(pool))]
}
