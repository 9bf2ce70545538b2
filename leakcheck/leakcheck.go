// Package leakcheck tracks live resources by observing handle lifecycle
// events.
//
// A Checker subscribed to the linked package counts, per resource, how many
// handles currently own it. Resources whose rings never drain show up in
// Check and Report. Intended for tests and shutdown diagnostics; nothing in
// the handle primitive depends on it.
//
//	c := leakcheck.New()
//	linked.Subscribe(c)
//	defer linked.Unsubscribe(c)
//
//	// ... exercise handles ...
//
//	if err := c.Check(); err != nil {
//	    t.Fatal(err)
//	}
package leakcheck

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/linkedref/linked"
)

// Checker implements linked.Observer, tracking every resource that still
// has owning handles. Like the handles it observes, a Checker is
// single-threaded.
type Checker struct {
	live map[uintptr]*resourceInfo
}

type resourceInfo struct {
	value   any
	handles int
}

// New creates an empty Checker. Register it with linked.Subscribe before
// the handle traffic it should see.
func New() *Checker {
	return &Checker{live: make(map[uintptr]*resourceInfo)}
}

// OnHandleEvent implements linked.Observer.
func (c *Checker) OnHandleEvent(e linked.Event) {
	switch e.Type {
	case linked.EventCreated:
		c.live[e.Ref] = &resourceInfo{value: e.Value, handles: 1}
	case linked.EventShared:
		if r, ok := c.live[e.Ref]; ok {
			r.handles++
		}
	case linked.EventReleased:
		if r, ok := c.live[e.Ref]; ok {
			r.handles--
		}
	case linked.EventDropped:
		delete(c.live, e.Ref)
	}
}

// Live returns the number of resources that still have owners.
func (c *Checker) Live() int {
	return len(c.live)
}

// Check returns nil when every observed resource has been released, or an
// error describing each resource that still has owners.
func (c *Checker) Check() error {
	var err error
	for ref, r := range c.live {
		err = multierr.Append(err, fmt.Errorf(
			"leaked resource %T at 0x%x: %d handle(s) still own it", r.value, ref, r.handles))
	}
	return err
}

// Report logs every still-owned resource through l.
func (c *Checker) Report(l *zap.Logger) {
	for ref, r := range c.live {
		l.Warn("resource still owned",
			zap.Uintptr("ref", ref),
			zap.Int("handles", r.handles),
			zap.String("type", fmt.Sprintf("%T", r.value)))
	}
}
