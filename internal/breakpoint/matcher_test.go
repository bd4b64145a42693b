package breakpoint

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []string
}

func (r *recorder) handler(deferSetup bool) Handler {
	return Handler{
		Match:      func() { r.events = append(r.events, "match") },
		Unmatch:    func() { r.events = append(r.events, "unmatch") },
		Setup:      func() { r.events = append(r.events, "setup") },
		DeferSetup: deferSetup,
	}
}

func TestQueryMatches(t *testing.T) {
	tests := []struct {
		name  string
		q     Query
		width int
		want  bool
	}{
		{"below max", MaxWidth(767), 500, true},
		{"at max", MaxWidth(767), 767, true},
		{"above max", MaxWidth(767), 768, false},
		{"below min", MinWidth(100), 99, false},
		{"range inside", Query{MinWidth: 40, MaxWidth: 80}, 60, true},
		{"range outside", Query{MinWidth: 40, MaxWidth: 80}, 81, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Matches(tt.width))
		})
	}
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "screen and (max-width:767px)", MaxWidth(767).String())
	assert.Equal(t, "screen and (min-width:40px) and (max-width:80px)", Query{MinWidth: 40, MaxWidth: 80}.String())
}

func TestRegisterDoesNotEvaluate(t *testing.T) {
	m := NewMatcher()
	r := &recorder{}
	m.Register(MaxWidth(80), r.handler(true))

	assert.Empty(t, r.events)
	_, known := m.Width()
	assert.False(t, known)
}

func TestDeferredSetupRunsBeforeFirstMatch(t *testing.T) {
	m := NewMatcher()
	r := &recorder{}
	m.Register(MaxWidth(80), r.handler(true))

	m.Evaluate(120)
	assert.Empty(t, r.events, "first evaluation without a match fires nothing")

	m.Evaluate(60)
	m.Evaluate(70)
	m.Evaluate(100)
	m.Evaluate(50)
	assert.Equal(t, []string{"setup", "match", "unmatch", "match"}, r.events)
}

func TestImmediateSetup(t *testing.T) {
	m := NewMatcher()
	r := &recorder{}
	m.Register(MaxWidth(80), r.handler(false))
	assert.Equal(t, []string{"setup"}, r.events)

	m.Evaluate(10)
	assert.Equal(t, []string{"setup", "match"}, r.events)
}

func TestUnregisterUnmatches(t *testing.T) {
	m := NewMatcher()
	r := &recorder{}
	m.Register(MaxWidth(80), r.handler(true))
	m.Evaluate(10)
	m.Unregister(MaxWidth(80))
	m.Evaluate(100)

	assert.Equal(t, []string{"setup", "match", "unmatch"}, r.events)
}

func TestHandlersMayReenter(t *testing.T) {
	m := NewMatcher()
	calls := 0
	m.Register(MaxWidth(80), Handler{Match: func() {
		calls++
		m.Evaluate(40)
	}})
	m.Evaluate(10)
	assert.Equal(t, 1, calls)
	w, _ := m.Width()
	assert.Equal(t, 40, w)
}

func TestConcurrentEvaluateRunsSetupOnce(t *testing.T) {
	m := NewMatcher()
	var mu sync.Mutex
	setups := 0
	m.Register(MaxWidth(80), Handler{
		Setup: func() {
			mu.Lock()
			setups++
			mu.Unlock()
		},
		DeferSetup: true,
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			m.Evaluate(w)
		}(10 + i*20)
	}
	wg.Wait()
	m.Evaluate(10)

	assert.Equal(t, 1, setups)
}
