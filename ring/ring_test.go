package ring

import (
	"testing"
)

// size walks the ring rightward and counts its members.
func size(n *Node) int {
	count := 1
	for m := n.right; m != nil && m != n; m = m.right {
		count++
	}
	return count
}

func TestZeroValueIsSingleton(t *testing.T) {
	var n Node
	if !n.Unique() {
		t.Fatal("zero Node should be unique")
	}
	if size(&n) != 1 {
		t.Fatalf("expected ring size 1, got %d", size(&n))
	}
}

func TestInsertAfterLinksRing(t *testing.T) {
	var a, b, c Node
	b.InsertAfter(&a)
	c.InsertAfter(&a)

	if a.Unique() || b.Unique() || c.Unique() {
		t.Fatal("no member of a 3-ring should be unique")
	}
	if size(&a) != 3 {
		t.Fatalf("expected ring size 3, got %d", size(&a))
	}

	// InsertAfter splices immediately after the target.
	if a.right != &c || c.right != &b || b.right != &a {
		t.Fatal("rightward order should be a, c, b")
	}
	if a.left != &b || b.left != &c || c.left != &a {
		t.Fatal("leftward links should mirror rightward links")
	}
}

func TestEraseMiddle(t *testing.T) {
	var a, b, c Node
	b.InsertAfter(&a)
	c.InsertAfter(&b)

	b.Erase()

	if !b.Unique() {
		t.Fatal("erased node should be a singleton again")
	}
	if size(&a) != 2 {
		t.Fatalf("expected ring size 2 after erase, got %d", size(&a))
	}
	if a.right != &c || c.right != &a {
		t.Fatal("former neighbors should reconnect to each other")
	}
}

func TestEraseSingletonIsNoop(t *testing.T) {
	var n Node
	n.Erase()
	if !n.Unique() {
		t.Fatal("erasing a singleton should leave it a singleton")
	}
	n.Erase()
	if !n.Unique() {
		t.Fatal("repeated erase should still be safe")
	}
}

func TestEraseAllLeavesLast(t *testing.T) {
	var a, b, c, d Node
	b.InsertAfter(&a)
	c.InsertAfter(&a)
	d.InsertAfter(&a)

	b.Erase()
	c.Erase()
	d.Erase()

	if !a.Unique() {
		t.Fatal("last remaining member should be unique")
	}
}

func TestSwapBothSingletons(t *testing.T) {
	var a, b Node
	a.Swap(&b)
	if !a.Unique() || !b.Unique() {
		t.Fatal("swapping two singletons should change nothing")
	}
}

func TestSwapSelfIsNoop(t *testing.T) {
	var a, b Node
	b.InsertAfter(&a)
	a.Swap(&a)
	if size(&a) != 2 || a.right != &b || b.right != &a {
		t.Fatal("self-swap should leave the ring untouched")
	}
}

func TestSwapDisjointRings(t *testing.T) {
	var a1, a2, a3 Node
	a2.InsertAfter(&a1)
	a3.InsertAfter(&a2)

	var b1, b2 Node
	b2.InsertAfter(&b1)

	a2.Swap(&b2)

	// a2 took b2's place in the 2-ring, b2 took a2's place in the 3-ring.
	if size(&a1) != 3 || size(&b1) != 2 {
		t.Fatalf("ring sizes should be preserved, got %d and %d", size(&a1), size(&b1))
	}
	if b1.right != &a2 || a2.right != &b1 {
		t.Fatal("a2 should now be b1's sole companion")
	}
	for m := a1.right; m != &a1; m = m.right {
		if m == &a2 {
			t.Fatal("a2 should no longer be in its original ring")
		}
	}
}

func TestSwapSingletonWithRingMember(t *testing.T) {
	var a Node
	var b, c Node
	c.InsertAfter(&b)

	a.Swap(&b)

	if !b.Unique() {
		t.Fatal("b should have taken over a's singleton membership")
	}
	if a.Unique() || c.Unique() {
		t.Fatal("a and c should now share a ring")
	}
	if a.right != &c || c.right != &a {
		t.Fatal("a should have taken b's place next to c")
	}
}
