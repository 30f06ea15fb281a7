package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tapeworks/tickertape/internal/fn"
)

// AppConfig is the application-level configuration, mapped from
// environment variables.
type AppConfig struct {
	// Symbols is the universe of symbols the mock feed emits.
	Symbols []string `envconfig:"TAPE_SYMBOLS" default:"AAPL,MSFT,GOOG,AMZN,TSLA,NVDA"`
	// StartPrices lists listing prices positionally matching Symbols.
	// Missing positions fall back to the feed's default start price.
	StartPrices []float64 `envconfig:"TAPE_START_PRICES"`
	// TickInterval is the delay between generated quote updates.
	TickInterval time.Duration `envconfig:"TAPE_TICK_INTERVAL" default:"250ms"`
	// TapeSize is the capacity of the recent-updates tape.
	TapeSize int `envconfig:"TAPE_SIZE" default:"100"`
	// Debug enables verbose logging.
	Debug bool `envconfig:"TAPE_DEBUG" default:"false"`
}

// Load reads the configuration from a .env file (if present) and the
// environment.
func Load() (*AppConfig, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StartPriceMap pairs Symbols with StartPrices. Symbols beyond the
// length of StartPrices get no entry.
func (c *AppConfig) StartPriceMap() map[string]float64 {
	type entry struct {
		symbol string
		price  float64
	}
	pairs := fn.Zip(c.Symbols, c.StartPrices, func(s string, p float64) entry {
		return entry{symbol: s, price: p}
	})
	return fn.Reduce(pairs, make(map[string]float64, len(pairs)),
		func(m map[string]float64, e entry) map[string]float64 {
			m[e.symbol] = e.price
			return m
		})
}
