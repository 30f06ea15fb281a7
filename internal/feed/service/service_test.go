package service

import (
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Symbols = []string{"AAPL", "MSFT"}
	cfg.TickInterval = time.Millisecond
	cfg.ListingInterval = time.Millisecond
	cfg.Seed = 1
	return cfg
}

func TestFeedListsAllSymbols(t *testing.T) {
	svc := NewFeedService(testConfig(), nil)
	defer svc.Close()

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case q, ok := <-svc.Listings():
			if !ok {
				t.Fatal("listings channel closed early")
			}
			if q.Price <= 0 {
				t.Errorf("listing %s has non-positive price %v", q.Symbol, q.Price)
			}
			if q.Change != 0 {
				t.Errorf("listing %s has non-zero change %v", q.Symbol, q.Change)
			}
			seen[q.Symbol] = true
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for listing")
		}
	}

	if !seen["AAPL"] || !seen["MSFT"] {
		t.Errorf("expected both symbols listed, got %v", seen)
	}
}

func TestFeedEmitsUpdates(t *testing.T) {
	cfg := testConfig()
	svc := NewFeedService(cfg, nil)
	defer svc.Close()

	select {
	case u, ok := <-svc.Updates():
		if !ok {
			t.Fatal("updates channel closed early")
		}
		if u.Symbol != "AAPL" && u.Symbol != "MSFT" {
			t.Errorf("update for unexpected symbol %q", u.Symbol)
		}
		if u.Price == nil || u.Change == nil {
			t.Errorf("generated update missing fields: %+v", u)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for update")
	}
}

func TestFeedClose(t *testing.T) {
	svc := NewFeedService(testConfig(), nil)
	svc.Close()

	// Both channels close once the generator stops.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-svc.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for updates channel to close")
		}
	}
}
