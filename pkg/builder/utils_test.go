package builder

import (
	"testing"
)

func TestMapFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := Map(in, func(v int) int { return v * 2 })
	if len(out) != 4 || out[0] != 2 || out[3] != 8 {
		t.Fatalf("unexpected map output: %v", out)
	}

	filtered := Filter(out, func(v int) bool { return v%4 == 0 })
	if len(filtered) != 2 || filtered[0] != 4 || filtered[1] != 8 {
		t.Fatalf("unexpected filter output: %v", filtered)
	}
}
