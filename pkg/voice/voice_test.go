package voice

import (
	"testing"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

func TestSelectDeterministic(t *testing.T) {
	for _, l := range lang.All() {
		first := Select(l, "owner-1")
		for range 10 {
			if got := Select(l, "owner-1"); got != first {
				t.Fatalf("Select(%s) not stable: %q then %q", l, first, got)
			}
		}
	}
}

func TestSelectInPool(t *testing.T) {
	owners := []string{"a", "b", "owner-42", "b7c1"}
	for _, l := range lang.All() {
		pool := pools[l]
		for _, owner := range owners {
			got := Select(l, owner)
			found := false
			for _, v := range pool {
				if v == got {
					found = true
				}
			}
			if !found {
				t.Errorf("Select(%s, %s) = %q, not in pool %v", l, owner, got, pool)
			}
		}
	}
}

func TestSelectUnknownLanguage(t *testing.T) {
	if got, want := Select(lang.Language("fr"), "o"), Select(lang.English, "o"); got != want {
		t.Errorf("unknown language voice = %q, want English pool choice %q", got, want)
	}
}
