package linked

import (
	"github.com/wippyai/linkedref"
	"github.com/wippyai/linkedref/ring"
)

// Handle is a shared-ownership reference to a value of type T.
//
// All handles owning one resource form a ring; no reference count exists
// anywhere. The zero Handle is an empty handle owning nothing. Handles are
// used through pointers and must not be copied by value.
type Handle[T any] struct {
	ptr  *T
	node ring.Node
}

// Empty returns a handle that owns nothing. The zero Handle value is
// equivalent.
func Empty[T any]() *Handle[T] {
	return &Handle[T]{}
}

// New takes sole ownership of p. The new handle is always a fresh
// singleton, even if some other handle already owns the same pointer;
// sharing only ever happens handle to handle.
func New[T any](p *T) *Handle[T] {
	h := &Handle[T]{ptr: p}
	if p != nil && notifying() {
		notify(EventCreated, h.ref(), h.ptr)
	}
	return h
}

// Clone returns a new handle sharing ownership with h. Afterward neither
// handle is unique.
func (h *Handle[T]) Clone() *Handle[T] {
	c := &Handle[T]{ptr: h.ptr}
	c.node.InsertAfter(&h.node)
	if c.ptr != nil && notifying() {
		notify(EventShared, c.ref(), c.ptr)
	}
	return c
}

// Alias returns a handle of element type T sharing ownership with src,
// whose element type is S. conv carries the reference conversion and is
// checked at compile time; the usual shape is an embedded-field upcast:
//
//	ha := linked.Alias(hs, func(s *spider) *animal { return &s.animal })
//
// Every handle in a ring must refer to the same underlying resource; conv
// returning an unrelated pointer violates that contract. When the ring's
// last owner releases through an aliased handle, the Dropper check runs
// against that handle's own reference.
func Alias[T, S any](src *Handle[S], conv func(*S) *T) *Handle[T] {
	a := &Handle[T]{}
	if src.ptr != nil {
		a.ptr = conv(src.ptr)
	}
	a.node.InsertAfter(&src.node)
	if a.ptr != nil && notifying() {
		notify(EventShared, a.ref(), a.ptr)
	}
	return a
}

// Reset releases h's share of its resource and leaves h empty. If h was the
// last owner the resource is released; otherwise the remaining ring members
// keep owning it.
func (h *Handle[T]) Reset() {
	h.drop()
	h.ptr = nil
}

// ResetTo releases h's share of its current resource, then takes sole
// ownership of p as a fresh singleton. It never rejoins the prior ring.
func (h *Handle[T]) ResetTo(p *T) {
	h.drop()
	h.ptr = p
	if p != nil && notifying() {
		notify(EventCreated, h.ref(), h.ptr)
	}
}

// Assign makes h share rhs's resource, releasing h's current share first.
// Assigning a handle to itself, or between handles that already share a
// resource, is a no-op.
func (h *Handle[T]) Assign(rhs *Handle[T]) {
	if h == rhs || (h.ptr != nil && h.ptr == rhs.ptr) {
		return
	}
	h.drop()
	h.node.InsertAfter(&rhs.node)
	h.ptr = rhs.ptr
	if h.ptr != nil && notifying() {
		notify(EventShared, h.ref(), h.ptr)
	}
}

// Swap exchanges the resources and ring memberships of h and other as one
// logical step. No-op when both already reference the identical resource.
// No other member of either ring is affected.
func (h *Handle[T]) Swap(other *Handle[T]) {
	if h.ptr == other.ptr {
		return
	}
	h.node.Swap(&other.node)
	h.ptr, other.ptr = other.ptr, h.ptr
}

// Get returns the raw resource reference without affecting ownership.
func (h *Handle[T]) Get() *T {
	return h.ptr
}

// Value dereferences the handle. The reference must be non-nil.
func (h *Handle[T]) Value() T {
	return *h.ptr
}

// Valid reports whether h references a resource.
func (h *Handle[T]) Valid() bool {
	return h.ptr != nil
}

// Unique reports whether h is the sole owner of its resource.
func (h *Handle[T]) Unique() bool {
	return h.node.Unique()
}

// drop applies the release-or-detach rule for the current resource: the
// last ring member releases the resource, any other member only leaves the
// ring. Either way h's node is a singleton afterward.
func (h *Handle[T]) drop() {
	if h.node.Unique() {
		if h.ptr != nil {
			if d, ok := any(h.ptr).(linkedref.Dropper); ok {
				d.Drop()
			}
			if notifying() {
				notify(EventDropped, h.ref(), h.ptr)
			}
		}
		return
	}
	h.node.Erase()
	if h.ptr != nil && notifying() {
		notify(EventReleased, h.ref(), h.ptr)
	}
}
