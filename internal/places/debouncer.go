package places

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"transferbook/pkg/model"
)

// Debouncer delays searches per key and drops every query that a newer one
// for the same key replaces within the delay.
type Debouncer struct {
	provider       Provider
	delay          time.Duration
	minQueryLength int

	mu      sync.Mutex
	pending map[string]*pendingSearch
}

type pendingSearch struct {
	superseded chan struct{}
}

func NewDebouncer(provider Provider, delay time.Duration, minQueryLength int) *Debouncer {
	return &Debouncer{
		provider:       provider,
		delay:          delay,
		minQueryLength: minQueryLength,
		pending:        make(map[string]*pendingSearch),
	}
}

// Search returns no candidates without calling the provider when the trimmed
// query is shorter than the minimum length.
func (d *Debouncer) Search(ctx context.Context, key, query string) ([]model.Candidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < d.minQueryLength {
		return []model.Candidate{}, nil
	}

	p := d.register(key)

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-p.superseded:
		return nil, ErrSuperseded
	case <-ctx.Done():
		d.claim(key, p)
		return nil, ctx.Err()
	case <-timer.C:
	}

	if !d.claim(key, p) {
		return nil, ErrSuperseded
	}
	return d.provider.SearchPlaces(ctx, query)
}

func (d *Debouncer) register(key string) *pendingSearch {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		close(prev.superseded)
	}
	p := &pendingSearch{superseded: make(chan struct{})}
	d.pending[key] = p
	return p
}

// claim removes p if it is still the latest search for key.
func (d *Debouncer) claim(key string, p *pendingSearch) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending[key] != p {
		return false
	}
	delete(d.pending, key)
	return true
}

func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
