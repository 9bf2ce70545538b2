//go:build ringcheck

package ring

// Precondition checks are compiled in under the ringcheck build tag.
const checkEnabled = true
