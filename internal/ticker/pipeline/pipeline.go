package pipeline

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tapeworks/tickertape/internal/feed"
	"github.com/tapeworks/tickertape/internal/ticker"
)

// Pipeline subscribes to a feed source and turns raw quotes into
// display-ready records. It owns two forwarder goroutines, one per
// input stream, so emission order within a symbol is preserved.
//
// The pipeline keeps no per-record state: every input element maps to
// exactly one output element through a pure transform, and a malformed
// element is logged and skipped without disturbing the stream.
type Pipeline struct {
	cfg    Config
	logger *zap.Logger

	created chan ticker.DisplayQuote
	updated chan ticker.DisplayUpdate

	skipped atomic.Int64
	dropped atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a Pipeline consuming from src and starts its forwarders.
func New(src feed.Source, cfg Config, logger *zap.Logger) *Pipeline {
	if cfg.CreatedBuffer <= 0 {
		cfg.CreatedBuffer = DefaultConfig().CreatedBuffer
	}
	if cfg.UpdatedBuffer <= 0 {
		cfg.UpdatedBuffer = DefaultConfig().UpdatedBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		cfg:     cfg,
		logger:  logger,
		created: make(chan ticker.DisplayQuote, cfg.CreatedBuffer),
		updated: make(chan ticker.DisplayUpdate, cfg.UpdatedBuffer),
		closed:  make(chan struct{}),
	}

	p.wg.Add(2)
	go p.runListingForwarder(src.Listings())
	go p.runUpdateForwarder(src.Updates())

	return p
}

func (p *Pipeline) runListingForwarder(in <-chan feed.Quote) {
	defer p.wg.Done()
	defer close(p.created)

	for {
		select {
		case <-p.closed:
			return
		case q, ok := <-in:
			if !ok {
				return
			}
			dq, err := ticker.FormatQuote(q)
			if err != nil {
				p.skipped.Add(1)
				p.logger.Warn("skipping malformed quote",
					zap.String("symbol", q.Symbol),
					zap.Error(err))
				continue
			}
			if !p.sendCreated(dq) {
				return
			}
		}
	}
}

func (p *Pipeline) runUpdateForwarder(in <-chan feed.QuoteUpdate) {
	defer p.wg.Done()
	defer close(p.updated)

	for {
		select {
		case <-p.closed:
			return
		case u, ok := <-in:
			if !ok {
				return
			}
			du, err := ticker.FormatQuoteUpdate(u)
			if err != nil {
				p.skipped.Add(1)
				p.logger.Warn("skipping malformed update",
					zap.String("symbol", u.Symbol),
					zap.Error(err))
				continue
			}
			if !p.sendUpdated(du) {
				return
			}
		}
	}
}

func (p *Pipeline) sendCreated(dq ticker.DisplayQuote) bool {
	if p.cfg.DropOnOverflow {
		select {
		case p.created <- dq:
		case <-p.closed:
			return false
		default:
			p.dropped.Add(1)
		}
		return true
	}
	select {
	case p.created <- dq:
		return true
	case <-p.closed:
		return false
	}
}

func (p *Pipeline) sendUpdated(du ticker.DisplayUpdate) bool {
	if p.cfg.DropOnOverflow {
		select {
		case p.updated <- du:
		case <-p.closed:
			return false
		default:
			p.dropped.Add(1)
		}
		return true
	}
	select {
	case p.updated <- du:
		return true
	case <-p.closed:
		return false
	}
}

// Created returns the stream of display quotes for new listings.
func (p *Pipeline) Created() <-chan ticker.DisplayQuote {
	return p.created
}

// Updated returns the stream of formatted partial updates.
func (p *Pipeline) Updated() <-chan ticker.DisplayUpdate {
	return p.updated
}

// Skipped returns the count of malformed elements dropped so far.
func (p *Pipeline) Skipped() int64 {
	return p.skipped.Load()
}

// Dropped returns the count of output elements dropped on overflow.
func (p *Pipeline) Dropped() int64 {
	return p.dropped.Load()
}

// Close stops both forwarders and closes the output channels. No
// element is delivered after Close returns.
func (p *Pipeline) Close() {
	p.closeOnce.Do(func() {
		close(p.closed)
	})
	p.wg.Wait()
}
