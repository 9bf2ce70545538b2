package linked

import "github.com/google/btree"

// setDegree is the B-tree branching factor for Set.
const setDegree = 8

// Set is an ordered collection of handles keyed by resource identity.
//
// The set shares ownership: Insert clones the handle into the set, so the
// resource stays alive while its key is present, and Delete or Clear reset
// the stored clone. Like handles themselves, a Set is single-threaded.
type Set[T any] struct {
	tree *btree.BTreeG[*Handle[T]]
}

// NewSet creates an empty ordered handle set.
func NewSet[T any]() *Set[T] {
	return &Set[T]{
		tree: btree.NewG(setDegree, func(a, b *Handle[T]) bool {
			return a.Less(b)
		}),
	}
}

// Insert adds h's resource to the set, taking a share of its ownership.
// It reports whether the resource was newly added.
func (s *Set[T]) Insert(h *Handle[T]) bool {
	if s.tree.Has(h) {
		return false
	}
	s.tree.ReplaceOrInsert(h.Clone())
	return true
}

// Has reports whether the set holds h's resource.
func (s *Set[T]) Has(h *Handle[T]) bool {
	return s.tree.Has(h)
}

// Delete releases the set's share of h's resource and reports whether it
// was present.
func (s *Set[T]) Delete(h *Handle[T]) bool {
	old, ok := s.tree.Delete(h)
	if ok {
		old.Reset()
	}
	return ok
}

// Len returns the number of resources in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Ascend visits the set's handles in ascending resource-address order until
// fn returns false.
func (s *Set[T]) Ascend(fn func(*Handle[T]) bool) {
	s.tree.Ascend(func(h *Handle[T]) bool {
		return fn(h)
	})
}

// Clear releases every share the set holds.
func (s *Set[T]) Clear() {
	// Collect first: releasing while iterating would mutate the tree's
	// ordering keys mid-walk.
	var held []*Handle[T]
	s.tree.Ascend(func(h *Handle[T]) bool {
		held = append(held, h)
		return true
	})
	s.tree.Clear(false)
	for _, h := range held {
		h.Reset()
	}
}
