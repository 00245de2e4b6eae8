// Package search drives autocomplete lookups for a text box that changes on
// every keystroke.
package search

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"weather-finder/internal/models"
	"weather-finder/pkg/observe"
)

const (
	DefaultDebounce       = 250 * time.Millisecond
	DefaultMinQueryLength = 2
)

// FetchFunc looks up suggestions; weather.Service.Suggestions fits.
type FetchFunc func(ctx context.Context, query string) ([]models.CitySuggestion, error)

// Result is delivered to the OnResult callback and returned by Latest.
// On failure Suggestions still holds the previous list and Err is set.
type Result struct {
	Generation  uint64
	Query       string
	Suggestions []models.CitySuggestion
	Err         error
}

type Option func(*Session)

// WithDebounce sets how long input must be idle before a lookup starts.
// Zero starts lookups immediately.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

func WithMinQueryLength(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.minLen = n
		}
	}
}

func WithLogger(l *observe.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.l = l
		}
	}
}

// OnResult registers the callback for results. Callbacks are serialized and
// only ever see the newest generation. They may call Latest but must not
// call Update or Close.
func OnResult(fn func(Result)) Option {
	return func(s *Session) {
		s.onResult = fn
	}
}

// Session turns a stream of query edits into lookups. Each Update supersedes
// everything before it: pending timers are stopped, the in-flight lookup is
// cancelled, and any response that still arrives for an older generation is
// discarded.
type Session struct {
	fetch    FetchFunc
	debounce time.Duration
	minLen   int
	onResult func(Result)
	l        *observe.Logger

	ctx        context.Context
	stop       context.CancelFunc
	emitMu     sync.Mutex
	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	latest     Result
	closed     bool
}

func NewSession(fetch FetchFunc, opts ...Option) *Session {
	ctx, stop := context.WithCancel(context.Background())
	s := &Session{
		fetch:    fetch,
		debounce: DefaultDebounce,
		minLen:   DefaultMinQueryLength,
		onResult: func(Result) {},
		l:        observe.NewNopLogger(),
		ctx:      ctx,
		stop:     stop,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update records the current text of the search box.
func (s *Session) Update(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.generation++
	gen := s.generation
	s.supersede()

	if utf8.RuneCountInString(query) < s.minLen {
		s.latest = Result{Generation: gen, Query: query, Suggestions: []models.CitySuggestion{}}
		res := s.snapshot()
		s.mu.Unlock()
		s.emit(res)
		return
	}

	if s.debounce == 0 {
		s.mu.Unlock()
		go s.run(gen, query)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() { s.run(gen, query) })
	s.mu.Unlock()
}

// Latest returns the newest delivered state.
func (s *Session) Latest() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Close stops pending work. Later updates are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.supersede()
	s.stop()
}

// supersede must be called with mu held.
func (s *Session) supersede() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// snapshot must be called with mu held. The list is never nil.
func (s *Session) snapshot() Result {
	res := s.latest
	res.Suggestions = make([]models.CitySuggestion, len(s.latest.Suggestions))
	copy(res.Suggestions, s.latest.Suggestions)
	return res
}

func (s *Session) current(gen uint64) bool {
	return !s.closed && gen == s.generation
}

func (s *Session) run(gen uint64, query string) {
	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.mu.Unlock()

	suggestions, err := s.fetch(ctx, query)
	cancel()

	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		s.l.Debug("discarding stale suggestions", map[string]any{
			"query":      query,
			"generation": gen,
		})
		return
	}
	s.cancel = nil
	if err != nil {
		s.latest = Result{Generation: gen, Query: query, Suggestions: s.latest.Suggestions, Err: err}
	} else {
		s.latest = Result{Generation: gen, Query: query, Suggestions: suggestions}
	}
	res := s.snapshot()
	s.mu.Unlock()

	s.emit(res)
}

// emit delivers res unless a newer generation has started meanwhile.
func (s *Session) emit(res Result) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	ok := s.current(res.Generation)
	s.mu.Unlock()
	if ok {
		s.onResult(res)
	}
}
