package linked

import (
	"sort"
	"testing"
)

func TestEqualityByIdentity(t *testing.T) {
	x, y := 5, 5
	h1 := New(&x)
	h2 := h1.Clone()
	h3 := New(&y)

	if !h1.Equal(h2) {
		t.Fatal("handles sharing a resource compare equal")
	}
	if h1.Equal(h3) {
		t.Fatal("equal values at different addresses must not compare equal")
	}
	if h1.Compare(h2) != 0 {
		t.Fatal("Compare should agree with Equal")
	}
}

func TestStrictWeakOrder(t *testing.T) {
	vals := make([]int, 3)
	hs := []*Handle[int]{New(&vals[0]), New(&vals[1]), New(&vals[2])}

	for _, h := range hs {
		if h.Less(h) {
			t.Fatal("Less must be irreflexive")
		}
	}
	for _, a := range hs {
		for _, b := range hs {
			if a.Less(b) && b.Less(a) {
				t.Fatal("Less must be asymmetric")
			}
			if !a.Equal(b) && !a.Less(b) && !b.Less(a) {
				t.Fatal("distinct resources must be ordered")
			}
		}
	}

	sort.Slice(hs, func(i, j int) bool { return hs[i].Less(hs[j]) })
	for i := 0; i+1 < len(hs); i++ {
		if !hs[i].Less(hs[i+1]) {
			t.Fatal("sorted order must be strictly increasing")
		}
	}
	if !hs[0].Less(hs[2]) {
		t.Fatal("Less must be transitive across the sorted sequence")
	}
}

func TestCompareMatchesLess(t *testing.T) {
	vals := make([]int, 2)
	a, b := New(&vals[0]), New(&vals[1])

	if a.Less(b) {
		if a.Compare(b) != -1 || b.Compare(a) != 1 {
			t.Fatal("Compare should mirror Less")
		}
	} else {
		if a.Compare(b) != 1 || b.Compare(a) != -1 {
			t.Fatal("Compare should mirror Less")
		}
	}
}

func TestEmptyHandlesCompareEqual(t *testing.T) {
	a := Empty[int]()
	b := Empty[int]()

	if !a.Equal(b) {
		t.Fatal("empty handles share the nil identity")
	}
	if a.Less(b) || b.Less(a) {
		t.Fatal("empty handles must not order against each other")
	}
}
