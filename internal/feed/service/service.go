package service

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tapeworks/tickertape/internal/feed"
)

// FeedService is an in-process mock quote feed. It lists each
// configured symbol once, then random-walks prices and emits updates
// until closed.
type FeedService struct {
	cfg    Config
	logger *zap.Logger
	rng    *rand.Rand

	listings chan feed.Quote
	updates  chan feed.QuoteUpdate

	droppedListings atomic.Int64
	droppedUpdates  atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewFeedService creates a new FeedService and starts its generator.
func NewFeedService(cfg Config, logger *zap.Logger) *FeedService {
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = DefaultConfig().Symbols
	}
	if cfg.DefaultStartPrice <= 0 {
		cfg.DefaultStartPrice = DefaultConfig().DefaultStartPrice
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	if cfg.ListingInterval <= 0 {
		cfg.ListingInterval = DefaultConfig().ListingInterval
	}
	if cfg.ListingBuffer <= 0 {
		cfg.ListingBuffer = DefaultConfig().ListingBuffer
	}
	if cfg.UpdateBuffer <= 0 {
		cfg.UpdateBuffer = DefaultConfig().UpdateBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &FeedService{
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		listings: make(chan feed.Quote, cfg.ListingBuffer),
		updates:  make(chan feed.QuoteUpdate, cfg.UpdateBuffer),
		closed:   make(chan struct{}),
	}

	s.wg.Add(1)
	go s.runGenerator()

	return s
}

func (s *FeedService) runGenerator() {
	defer s.wg.Done()
	defer close(s.updates)
	defer close(s.listings)

	prices := make(map[string]float64, len(s.cfg.Symbols))
	base := make(map[string]float64, len(s.cfg.Symbols))

	// Warmup: list every symbol once.
	for _, sym := range s.cfg.Symbols {
		price := s.cfg.DefaultStartPrice
		if p, ok := s.cfg.StartPrices[sym]; ok {
			price = p
		}
		prices[sym] = price
		base[sym] = price

		q := feed.Quote{Symbol: sym, Price: price, Change: 0}
		if !s.emitListing(q) {
			return
		}

		select {
		case <-s.closed:
			return
		case <-time.After(s.cfg.ListingInterval):
		}
	}

	s.logger.Info("feed warmup complete", zap.Int("symbols", len(s.cfg.Symbols)))

	// Steady state: random-walk one symbol per tick.
	for {
		select {
		case <-s.closed:
			return
		case <-time.After(s.cfg.TickInterval):
		}

		sym := s.cfg.Symbols[s.rng.Intn(len(s.cfg.Symbols))]
		delta := (s.rng.Float64() - 0.5) * 2.0
		price := prices[sym] + delta
		if price < 0.01 {
			price = 0.01
		}
		prices[sym] = price
		change := price - base[sym]

		u := feed.QuoteUpdate{Symbol: sym, Price: &price, Change: &change}
		if !s.emitUpdate(u) {
			return
		}
	}
}

// emitListing sends a listing, dropping on overflow if configured.
// Returns false when the service is closed.
func (s *FeedService) emitListing(q feed.Quote) bool {
	if s.cfg.DropOnOverflow {
		select {
		case s.listings <- q:
		case <-s.closed:
			return false
		default:
			s.droppedListings.Add(1)
		}
		return true
	}
	select {
	case s.listings <- q:
		return true
	case <-s.closed:
		return false
	}
}

func (s *FeedService) emitUpdate(u feed.QuoteUpdate) bool {
	if s.cfg.DropOnOverflow {
		select {
		case s.updates <- u:
		case <-s.closed:
			return false
		default:
			s.droppedUpdates.Add(1)
		}
		return true
	}
	select {
	case s.updates <- u:
		return true
	case <-s.closed:
		return false
	}
}

// Listings returns the channel of symbol listings.
func (s *FeedService) Listings() <-chan feed.Quote {
	return s.listings
}

// Updates returns the channel of quote updates.
func (s *FeedService) Updates() <-chan feed.QuoteUpdate {
	return s.updates
}

// DroppedListings returns the count of listings dropped on overflow.
func (s *FeedService) DroppedListings() int64 {
	return s.droppedListings.Load()
}

// DroppedUpdates returns the count of updates dropped on overflow.
func (s *FeedService) DroppedUpdates() int64 {
	return s.droppedUpdates.Load()
}

// Close shuts down the feed and waits for the generator to finish.
func (s *FeedService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.wg.Wait()
}
