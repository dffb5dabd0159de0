// Package visibility owns the show/hide state of the site header.
//
// The coordinator holds the Controller; components that need to hide the
// header (the project modal) get a Handle instead of shared state.
package visibility

import "sync"

// Handle is the capability passed to components that may toggle the header.
type Handle interface {
	Show()
	Hide()
}

// Controller holds the header visibility. The zero value is not usable;
// call New.
type Controller struct {
	mu      sync.Mutex
	visible bool
	nextID  int
	subs    map[int]func(visible bool)
}

// New returns a Controller with the header visible.
func New() *Controller {
	return &Controller{visible: true, subs: make(map[int]func(bool))}
}

func (c *Controller) Show() { c.set(true) }
func (c *Controller) Hide() { c.set(false) }

func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Subscribe calls fn on every transition until the returned cancel runs.
func (c *Controller) Subscribe(fn func(visible bool)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Controller) set(visible bool) {
	c.mu.Lock()
	if c.visible == visible {
		c.mu.Unlock()
		return
	}
	c.visible = visible
	subs := make([]func(bool), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(visible)
	}
}
