package breakpoint

import (
	"sync"

	"tabsresp/pkg/logging"
)

const subsystem = "Breakpoint"

// Handler receives breakpoint transitions for one registered query.
type Handler struct {
	// Match runs when the query starts matching.
	Match func()
	// Unmatch runs when a matching query stops matching.
	Unmatch func()
	// Setup runs once, at registration or, with DeferSetup, right before the first Match.
	Setup func()
	// DeferSetup postpones Setup until the query first matches.
	DeferSetup bool
}

type registration struct {
	query     Query
	handler   Handler
	evaluated bool
	matched   bool
	setupDone bool
}

// Matcher tracks the current viewport width and notifies handlers whose
// queries change state. Nothing is evaluated at registration: the first call
// to Evaluate establishes each query's state.
type Matcher struct {
	mu    sync.Mutex
	regs  []*registration
	width int
	known bool
}

// NewMatcher returns an empty Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Register adds a handler for q.
func (m *Matcher) Register(q Query, h Handler) {
	setup := !h.DeferSetup && h.Setup != nil

	m.mu.Lock()
	m.regs = append(m.regs, &registration{query: q, handler: h, setupDone: setup})
	m.mu.Unlock()

	logging.Debug(subsystem, "registered %s (deferSetup=%t)", q, h.DeferSetup)
	if setup {
		h.Setup()
	}
}

// Unregister removes every handler registered for q. Matched handlers get a
// final Unmatch call.
func (m *Matcher) Unregister(q Query) {
	m.mu.Lock()
	var removed []*registration
	kept := m.regs[:0]
	for _, reg := range m.regs {
		if reg.query == q {
			removed = append(removed, reg)
			continue
		}
		kept = append(kept, reg)
	}
	m.regs = kept
	m.mu.Unlock()

	for _, reg := range removed {
		if reg.matched && reg.handler.Unmatch != nil {
			reg.handler.Unmatch()
		}
	}
}

// Width returns the last evaluated width and whether any evaluation happened.
func (m *Matcher) Width() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.known
}

// Evaluate records a viewport width and fires Match/Unmatch for every query
// whose state changed. Callbacks run on the caller's goroutine after the lock
// is released, so handlers may register or evaluate again.
func (m *Matcher) Evaluate(width int) {
	type call struct {
		reg   *registration
		match bool
		setup bool
	}

	m.mu.Lock()
	m.width = width
	m.known = true
	var calls []call
	for _, reg := range m.regs {
		now := reg.query.Matches(width)
		switch {
		case !reg.evaluated:
			reg.evaluated = true
			if now {
				calls = append(calls, call{reg: reg, match: true})
			}
		case now != reg.matched:
			calls = append(calls, call{reg: reg, match: now})
		}
		reg.matched = now
	}
	for i := range calls {
		c := &calls[i]
		if c.match && !c.reg.setupDone {
			c.reg.setupDone = true
			c.setup = c.reg.handler.Setup != nil
		}
	}
	m.mu.Unlock()

	for _, c := range calls {
		h := c.reg.handler
		if c.match {
			if c.setup {
				h.Setup()
			}
			logging.Debug(subsystem, "%s matched at width %d", c.reg.query, width)
			if h.Match != nil {
				h.Match()
			}
			continue
		}
		logging.Debug(subsystem, "%s unmatched at width %d", c.reg.query, width)
		if h.Unmatch != nil {
			h.Unmatch()
		}
	}
}
