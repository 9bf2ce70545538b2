package linked

import "unsafe"

// Comparisons order handles by raw resource address, never by ring
// membership or pointee value. Equal handles reference the identical
// resource; the order is a strict weak order suitable for keying ordered
// containers such as Set.

// Equal reports whether h and other reference the identical resource.
func (h *Handle[T]) Equal(other *Handle[T]) bool {
	return h.ptr == other.ptr
}

// Less reports whether h orders before other by resource address.
func (h *Handle[T]) Less(other *Handle[T]) bool {
	return h.ref() < other.ref()
}

// Compare returns -1, 0, or 1 ordering h against other by resource address.
func (h *Handle[T]) Compare(other *Handle[T]) int {
	switch a, b := h.ref(), other.ref(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ref is the resource's address identity. It is stable across covariant
// aliasing of a leading embedded field and zero for empty handles.
func (h *Handle[T]) ref() uintptr {
	return uintptr(unsafe.Pointer(h.ptr))
}
