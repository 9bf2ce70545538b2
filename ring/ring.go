// Package ring implements an intrusive circular doubly linked list node.
//
// A Node tracks membership in an ownership group: every member of a ring
// logically shares one resource, and a node whose both neighbors are itself
// is the group's sole member. Ring membership replaces a reference count —
// "am I the last owner" is a pointer comparison, and joining or leaving a
// group is an O(1) splice with no allocation.
//
// The zero Node is a usable singleton. Nodes are embedded in their owning
// structs and linked in place; a Node must not be copied once linked.
//
// Nodes are not safe for concurrent use. Callers that share rings across
// goroutines must synchronize externally.
package ring

// Node is a member of a circular doubly linked list. The zero value is a
// singleton ring of one.
type Node struct {
	noCopy noCopy

	left  *Node
	right *Node
}

// Unique reports whether n is the only member of its ring.
func (n *Node) Unique() bool {
	return (n.left == nil || n.left == n) && (n.right == nil || n.right == n)
}

// InsertAfter splices n into target's ring, immediately following target.
//
// n must currently be a singleton; inserting an already linked node is a
// contract violation, detected only under the ringcheck build tag.
func (n *Node) InsertAfter(target *Node) {
	check(n.Unique(), "InsertAfter on a node that is already linked")
	target.lazyInit()
	n.right = target.right
	n.right.left = n
	n.left = target
	target.right = n
}

// Erase removes n from its ring, reconnecting its former neighbors to each
// other, and resets n to a singleton. Erasing a singleton is a no-op.
func (n *Node) Erase() {
	n.lazyInit()
	n.right.left = n.left
	n.left.right = n.right
	n.left = n
	n.right = n
}

// Swap exchanges the ring memberships of n and other. If both are
// singletons there is nothing to exchange. A side that takes over a real
// membership gets its new neighbors repointed at it; a side that takes over
// a singleton membership becomes a singleton itself.
func (n *Node) Swap(other *Node) {
	if n == other {
		return
	}
	nWasUnique, otherWasUnique := n.Unique(), other.Unique()
	if nWasUnique && otherWasUnique {
		return
	}
	n.lazyInit()
	other.lazyInit()

	n.left, other.left = other.left, n.left
	n.right, other.right = other.right, n.right

	if otherWasUnique {
		n.left = n
		n.right = n
	} else {
		n.right.left = n
		n.left.right = n
	}
	if nWasUnique {
		other.left = other
		other.right = other
	} else {
		other.right.left = other
		other.left.right = other
	}
}

// lazyInit normalizes the zero value into an explicit singleton so that
// splice code can assume non-nil neighbors.
func (n *Node) lazyInit() {
	if n.left == nil {
		n.left = n
	}
	if n.right == nil {
		n.right = n
	}
}

func check(cond bool, msg string) {
	if checkEnabled && !cond {
		panic("ring: " + msg)
	}
}

// noCopy makes `go vet` flag Nodes copied by value after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
