package search

import (
	"context"
	"log"
	"sync"

	"jobdash/internal/domain"
)

// SuggestionSource is the backend call behind autocomplete
type SuggestionSource interface {
	Suggestions(ctx context.Context, field domain.Field, q string, limit int) ([]string, error)
}

// Suggester fetches autocomplete candidates and fails open
type Suggester struct {
	src SuggestionSource
}

func NewSuggester(src SuggestionSource) *Suggester {
	return &Suggester{src: src}
}

// Fetch returns up to limit candidates. An empty query makes no request;
// errors are logged and come back as an empty list.
func (s *Suggester) Fetch(ctx context.Context, field domain.Field, query string, limit int) []string {
	if query == "" {
		return []string{}
	}
	out, err := s.src.Suggestions(ctx, field, query, limit)
	if err != nil {
		log.Printf("[suggest] %s %q: %v", field, query, err)
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sequencer numbers requests per field so only the last issued one counts
type Sequencer struct {
	mu     sync.Mutex
	latest map[domain.Field]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[domain.Field]uint64)}
}

// Next issues a new sequence number for field
func (s *Sequencer) Next(field domain.Field) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[field]++
	return s.latest[field]
}

// Accept reports whether seq is the latest number issued for field
func (s *Sequencer) Accept(field domain.Field, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq != 0 && s.latest[field] == seq
}

// SuggestionBox holds the displayed suggestion list of every field
type SuggestionBox struct {
	seq   *Sequencer
	mu    sync.RWMutex
	lists map[domain.Field][]string
}

func NewSuggestionBox() *SuggestionBox {
	return &SuggestionBox{
		seq:   NewSequencer(),
		lists: make(map[domain.Field][]string),
	}
}

// Begin issues the sequence number for a request about to be sent
func (b *SuggestionBox) Begin(field domain.Field) uint64 {
	return b.seq.Next(field)
}

// Deliver stores a response if it belongs to the latest request for its
// field. Stale responses are dropped and false is returned.
func (b *SuggestionBox) Deliver(field domain.Field, seq uint64, list []string) bool {
	if !b.seq.Accept(field, seq) {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lists[field] = append([]string(nil), list...)
	return true
}

// Get returns the displayed list for field
func (b *SuggestionBox) Get(field domain.Field) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lists[field]
}

// Clear empties the list for field and invalidates requests in flight
func (b *SuggestionBox) Clear(field domain.Field) {
	b.seq.Next(field)
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lists, field)
}
