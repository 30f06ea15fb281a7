package service

import "time"

// Config holds configuration for the feed service.
type Config struct {
	// Symbols is the universe of symbols the feed emits quotes for.
	Symbols []string
	// StartPrices maps symbols to their listing price. Symbols without
	// an entry start at DefaultStartPrice.
	StartPrices map[string]float64
	// DefaultStartPrice is the listing price for symbols with no entry
	// in StartPrices.
	DefaultStartPrice float64
	// TickInterval is the delay between generated updates.
	TickInterval time.Duration
	// ListingInterval is the delay between symbol listings during warmup.
	ListingInterval time.Duration
	// ListingBuffer is the size of the listings channel.
	ListingBuffer int
	// UpdateBuffer is the size of the updates channel.
	UpdateBuffer int
	// DropOnOverflow determines whether the feed drops events when a
	// channel is full instead of blocking the generator.
	DropOnOverflow bool
	// Seed seeds the random walk; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Symbols:           []string{"AAPL", "MSFT", "GOOG", "AMZN", "TSLA", "NVDA"},
		DefaultStartPrice: 100.0,
		TickInterval:      250 * time.Millisecond,
		ListingInterval:   50 * time.Millisecond,
		ListingBuffer:     64,
		UpdateBuffer:      256,
		DropOnOverflow:    true,
	}
}
