package field

import "testing"

func tagged(i int) Particle { return Particle{X: float64(i)} }

func arenaTags(a *arena) []int {
	out := make([]int, 0, a.Len())
	for _, p := range a.AppendTo(nil) {
		out = append(out, int(p.X))
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArenaPushUntilFull(t *testing.T) {
	a := newArena(3)
	for i := 0; i < 3; i++ {
		if a.Push(tagged(i)) {
			t.Fatalf("push %d evicted before capacity", i)
		}
	}
	if got := arenaTags(a); !equalInts(got, []int{0, 1, 2}) {
		t.Fatalf("order = %v, want [0 1 2]", got)
	}
	if !a.Push(tagged(3)) {
		t.Fatal("push at capacity should evict")
	}
	if !a.Push(tagged(4)) {
		t.Fatal("push at capacity should evict")
	}
	if got := arenaTags(a); !equalInts(got, []int{2, 3, 4}) {
		t.Fatalf("order = %v, want [2 3 4]", got)
	}
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len/cap = %d/%d, want 3/3", a.Len(), a.Cap())
	}
}

func TestArenaReplaceKeepsOrder(t *testing.T) {
	a := newArena(4)
	for i := 0; i < 4; i++ {
		a.Push(tagged(i))
	}
	a.Push(tagged(4)) // head wraps
	a.Replace(0, tagged(10))
	a.Replace(3, tagged(13))
	if got := arenaTags(a); !equalInts(got, []int{10, 2, 3, 13}) {
		t.Fatalf("order = %v, want [10 2 3 13]", got)
	}

	// The replaced head is still the oldest slot.
	a.Push(tagged(5))
	if got := arenaTags(a); !equalInts(got, []int{2, 3, 13, 5}) {
		t.Fatalf("order = %v, want [2 3 13 5]", got)
	}

	a.Replace(7, tagged(99))
	a.Replace(-1, tagged(99))
	if got := arenaTags(a); !equalInts(got, []int{2, 3, 13, 5}) {
		t.Fatalf("out-of-range replace mutated arena: %v", got)
	}
}

func TestArenaResizeKeepsNewest(t *testing.T) {
	a := newArena(5)
	for i := 0; i < 7; i++ {
		a.Push(tagged(i))
	}
	a.Resize(3)
	if got := arenaTags(a); !equalInts(got, []int{4, 5, 6}) {
		t.Fatalf("after shrink = %v, want [4 5 6]", got)
	}
	a.Resize(6)
	a.Push(tagged(7))
	if got := arenaTags(a); !equalInts(got, []int{4, 5, 6, 7}) {
		t.Fatalf("after grow = %v, want [4 5 6 7]", got)
	}
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("len after reset = %d", a.Len())
	}
}

func TestArenaMinimumCapacity(t *testing.T) {
	a := newArena(0)
	if a.Cap() != 1 {
		t.Fatalf("cap = %d, want 1", a.Cap())
	}
	a.Push(tagged(1))
	a.Push(tagged(2))
	if got := arenaTags(a); !equalInts(got, []int{2}) {
		t.Fatalf("order = %v, want [2]", got)
	}
}
