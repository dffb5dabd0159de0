package scrollspy

import (
	"math"
	"sync"
)

// ScrollSource is the host's scroll signal. Listeners get no payload; the
// spy reads ScrollY itself.
type ScrollSource interface {
	ScrollY() float64
	OnScroll(fn func()) (cancel func())
}

// FrameToken identifies a scheduled frame callback.
type FrameToken int

// FrameScheduler runs a callback before the next frame is painted.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameToken
	CancelFrame(tok FrameToken)
}

// MissPolicy decides what is reported when no section matches a sample.
type MissPolicy int

const (
	// ClearOnMiss reports None.
	ClearOnMiss MissPolicy = iota
	// KeepLastOnMiss keeps the previously active section.
	KeepLastOnMiss
)

// Config describes what a Spy watches.
type Config struct {
	// Sections in top-to-bottom document order. Order breaks ties.
	Sections []SectionID
	// Offset is added to the scroll position before comparing. Negative and
	// non-finite values are treated as zero.
	Offset float64
	Miss   MissPolicy
	// OnChange is called when the active section changes. Calls never
	// overlap, and the last call always carries the value Active reports,
	// even when OnChange itself scrolls the page or reconfigures the spy.
	OnChange func(active SectionID)
}

// DefaultConfig returns a config for sections with the default offset.
func DefaultConfig(sections ...SectionID) Config {
	return Config{Sections: sections, Offset: DefaultOffset}
}

func (c Config) normalized() Config {
	c.Sections = append([]SectionID(nil), c.Sections...)
	if c.Offset < 0 || math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) {
		c.Offset = 0
	}
	return c
}

type frameState int

const (
	stateIdle frameState = iota
	stateScheduled
)

// Spy tracks the active section for one subscription.
type Spy struct {
	source   ScrollSource
	resolver Resolver
	frames   FrameScheduler

	mu       sync.Mutex
	cfg      Config
	state    frameState
	gen      uint64
	token    FrameToken
	hasToken bool
	active   SectionID
	samples  int
	closed   bool
	unlisten func()

	// notifying is set while a goroutine is delivering OnChange calls;
	// notified is the last value it delivered.
	notifying bool
	notified  SectionID
}

// Subscribe starts tracking and samples once immediately, so a page loaded
// already scrolled reports the right section.
func Subscribe(cfg Config, source ScrollSource, resolver Resolver, frames FrameScheduler) *Spy {
	s := &Spy{
		source:   source,
		resolver: resolver,
		frames:   frames,
		cfg:      cfg.normalized(),
	}
	s.unlisten = source.OnScroll(s.handleScroll)
	s.sample(s.gen)
	return s
}

// Active returns the active section, or None.
func (s *Spy) Active() SectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Samples returns how many recomputations have run.
func (s *Spy) Samples() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samples
}

// Close unsubscribes from the scroll source and cancels any pending frame.
func (s *Spy) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unlisten, tok, cancel := s.detachLocked()
	s.mu.Unlock()

	if cancel {
		s.frames.CancelFrame(tok)
	}
	if unlisten != nil {
		unlisten()
	}
}

// Reconfigure swaps the watched sections. The old listener and any frame
// scheduled under the old config are dropped before the new config is
// sampled.
func (s *Spy) Reconfigure(cfg Config) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	unlisten, tok, cancel := s.detachLocked()
	s.cfg = cfg.normalized()
	gen := s.gen
	s.mu.Unlock()

	if cancel {
		s.frames.CancelFrame(tok)
	}
	if unlisten != nil {
		unlisten()
	}

	next := s.source.OnScroll(s.handleScroll)
	s.mu.Lock()
	if s.closed || s.gen != gen {
		s.mu.Unlock()
		next()
		return
	}
	s.unlisten = next
	s.mu.Unlock()

	s.sample(gen)
}

// detachLocked invalidates pending frames and hands back what the caller
// must release once the lock is dropped.
func (s *Spy) detachLocked() (unlisten func(), tok FrameToken, cancel bool) {
	s.gen++
	unlisten, s.unlisten = s.unlisten, nil
	tok, cancel = s.token, s.hasToken && s.state == stateScheduled
	s.state = stateIdle
	s.hasToken = false
	return unlisten, tok, cancel
}

func (s *Spy) handleScroll() {
	s.mu.Lock()
	if s.closed || s.state == stateScheduled {
		s.mu.Unlock()
		return
	}
	s.state = stateScheduled
	gen := s.gen
	s.mu.Unlock()

	tok := s.frames.RequestFrame(func() { s.frame(gen) })

	s.mu.Lock()
	if s.state == stateScheduled && s.gen == gen {
		s.token = tok
		s.hasToken = true
	}
	s.mu.Unlock()
}

func (s *Spy) frame(gen uint64) {
	s.mu.Lock()
	if s.closed || s.gen != gen || s.state != stateScheduled {
		s.mu.Unlock()
		return
	}
	s.state = stateIdle
	s.hasToken = false
	s.mu.Unlock()

	s.sample(gen)
}

func (s *Spy) sample(gen uint64) {
	s.mu.Lock()
	if s.closed || s.gen != gen {
		s.mu.Unlock()
		return
	}
	cfg := s.cfg
	s.mu.Unlock()

	found := Detect(cfg.Sections, s.resolver, s.source.ScrollY()+cfg.Offset)

	s.mu.Lock()
	if s.closed || s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.samples++
	if found == None && cfg.Miss == KeepLastOnMiss {
		found = s.active
	}
	s.active = found
	s.notifyLocked()
}

// notifyLocked delivers changes of the active section to OnChange and
// releases s.mu. If another call is already delivering, it picks up the new
// value on its next pass.
func (s *Spy) notifyLocked() {
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	for {
		cur, fn := s.active, s.cfg.OnChange
		if cur == s.notified || s.closed {
			s.notifying = false
			s.mu.Unlock()
			return
		}
		s.notified = cur
		s.mu.Unlock()

		if fn != nil {
			fn(cur)
		}
		s.mu.Lock()
	}
}
