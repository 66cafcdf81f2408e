package quotes

import (
	"slices"
	"testing"
)

func TestRandom_FromPool(t *testing.T) {
	pool := All()
	if len(pool) != 6 {
		t.Fatalf("pool size = %d, want 6", len(pool))
	}
	for i := 0; i < 50; i++ {
		if q := Random(); !slices.Contains(pool, q) {
			t.Fatalf("Random() = %q, not in pool", q)
		}
	}
}

func TestNext_Changes(t *testing.T) {
	current := Random()
	for i := 0; i < 50; i++ {
		if Next(current) == current {
			t.Fatal("Next returned the current quote")
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	pool := All()
	pool[0] = "changed"
	if All()[0] == "changed" {
		t.Error("All exposed the internal slice")
	}
}
