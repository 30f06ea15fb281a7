package view

import (
	"sort"
	"sync"

	"github.com/tapeworks/tickertape/internal/ticker"
)

// Board is the render-side read model: the set of display quotes
// currently on the board, keyed by symbol. It decides create-or-update
// on behalf of the renderer and retains each record so partial updates
// can be merged onto it.
type Board struct {
	mu      sync.RWMutex
	quotes  map[string]ticker.DisplayQuote
	unknown int64
}

// NewBoard creates an empty Board.
func NewBoard() *Board {
	return &Board{
		quotes: make(map[string]ticker.DisplayQuote),
	}
}

// ApplyQuote adds a quote to the board, replacing any record already
// held for the symbol.
func (b *Board) ApplyQuote(q ticker.DisplayQuote) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.quotes[q.Symbol] = q
}

// ApplyUpdate merges an update onto the retained record. Fields absent
// from the update keep their current value. Updates for symbols not on
// the board are ignored and counted.
func (b *Board) ApplyUpdate(u ticker.DisplayUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.quotes[u.Symbol]
	if !ok {
		b.unknown++
		return
	}
	if u.Price != nil {
		q.Price = *u.Price
	}
	if u.Change != nil {
		q.Change = *u.Change
	}
	b.quotes[u.Symbol] = q
}

// Get returns the record held for a symbol.
func (b *Board) Get(symbol string) (ticker.DisplayQuote, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	q, ok := b.quotes[symbol]
	return q, ok
}

// Snapshot returns a copy of the board sorted by symbol.
func (b *Board) Snapshot() []ticker.DisplayQuote {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]ticker.DisplayQuote, 0, len(b.quotes))
	for _, q := range b.quotes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Len returns the number of symbols on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.quotes)
}

// UnknownUpdates returns the count of updates for symbols that were
// never listed.
func (b *Board) UnknownUpdates() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.unknown
}
