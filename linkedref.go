package linkedref

// Dropper is optionally implemented by resource values that need cleanup
// when their last owning handle is reset. Drop is called exactly once per
// ownership group, at the moment the final handle leaves its ring.
type Dropper interface {
	Drop()
}
