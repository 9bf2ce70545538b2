// Package linked implements shared-ownership handles backed by an intrusive
// ring instead of a reference counter.
//
// # Ownership Model
//
// Every Handle owning a resource is a node in that resource's ring; the ring
// membership is the reference count. Taking ownership (New) creates a
// singleton ring. Sharing (Clone, Alias, Assign) splices a node into the
// source's ring. Releasing (Reset, ResetTo, and the release half of Assign)
// erases the node; the last member to leave releases the resource, calling
// its Drop method if it implements linkedref.Dropper.
//
//	h1 := linked.New(&res)     // sole owner
//	h2 := h1.Clone()           // shared: !h1.Unique() && !h2.Unique()
//	h1.Reset()                 // h2 is now the sole owner
//	h2.Reset()                 // res.Drop() runs here, exactly once
//
// # Handles Are Not Values
//
// A handle's ring node is linked in place, so handles are created and passed
// as pointers; copying a Handle value breaks its ring (go vet reports such
// copies). The zero Handle is a valid empty handle.
//
// # Aliasing
//
// Alias shares one ring across handles of different static types, carrying
// the conversion as a compile-time-checked function. The canonical use is an
// embedded-field upcast, which preserves the resource's address identity
// when the embedded field leads the struct.
//
// # Ordering
//
// Comparisons (Equal, Less, Compare) use resource address identity only,
// forming a strict weak order. Set is an ordered, ownership-sharing
// container built on that order.
//
// # Observers
//
// Lifecycle observers (Subscribe) receive created/shared/released/dropped
// events, for diagnostics such as the leakcheck package. With no observer
// registered, handle operations stay allocation-free.
//
// Handles are single-threaded: no atomics, no locks. Synchronize externally
// if rings are touched from multiple goroutines.
package linked
