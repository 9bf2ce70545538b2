// Package linkedref provides shared-ownership handles without reference
// counters.
//
// A handle pairs a raw resource reference with a node in an intrusive
// circular doubly linked list (a "ring"). Every owning handle is a member of
// its resource's ring, and ring membership is the reference count: a handle
// is the last owner exactly when its node's two neighbors are the node
// itself. Sharing, releasing, and ownership queries are all O(1) splices and
// pointer checks, with no atomic or plain integer counter and no heap state
// beyond the handles themselves.
//
// # Architecture Overview
//
// The module is organized leaf-first:
//
//	linkedref/        Root package with the Dropper cleanup interface
//	├── ring/         Intrusive circular list node: Unique, InsertAfter,
//	│                 Erase, Swap
//	├── linked/       Handle[T] lifecycle, covariant aliasing, comparisons,
//	│                 ordered Set, lifecycle observers
//	└── leakcheck/    Observer that tracks live resources for tests
//
// # Quick Start
//
// Take ownership of a resource and share it:
//
//	h1 := linked.New(&buf)
//	h2 := h1.Clone()      // both owners now, neither unique
//
//	h1.Reset()            // h2 becomes the sole owner
//	h2.Reset()            // last owner out: buf.Drop() runs, exactly once
//
// # Resource Cleanup
//
// Values that need deterministic cleanup implement Dropper. When the last
// handle in a ring is reset, Drop is called exactly once; values without
// Drop are simply left to the garbage collector.
//
// # Concurrency
//
// Handles are single-threaded by design. There are no atomics and no locks
// in the primitive; concurrent mutation of handles, even of disjoint rings,
// requires external synchronization. That trade-off is the point: sharing
// and releasing cost a few pointer writes instead of contended atomic ops.
package linkedref
