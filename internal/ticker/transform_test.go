package ticker

import (
	"errors"
	"math"
	"testing"

	"github.com/tapeworks/tickertape/internal/feed"
)

func TestAddDisplayName(t *testing.T) {
	q := feed.Quote{Symbol: "AAPL", Price: 1, Change: 0}
	named := AddDisplayName(q)

	if named.Name != "AAPL" {
		t.Errorf("expected name AAPL, got %q", named.Name)
	}
	if named.Symbol != q.Symbol || named.Price != q.Price || named.Change != q.Change {
		t.Errorf("expected other fields untouched, got %+v", named)
	}
	// The input is left as it was.
	if q != (feed.Quote{Symbol: "AAPL", Price: 1, Change: 0}) {
		t.Errorf("input quote was modified: %+v", q)
	}
}

func TestFormatQuote(t *testing.T) {
	got, err := FormatQuote(feed.Quote{Symbol: "AAPL", Price: 121.7, Change: 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DisplayQuote{Symbol: "AAPL", Name: "AAPL", Price: "$121.70", Change: "+0.01"}
	if got != want {
		t.Errorf("FormatQuote = %+v, want %+v", got, want)
	}
}

func TestFormatQuoteMissingSymbol(t *testing.T) {
	_, err := FormatQuote(feed.Quote{Price: 1, Change: 0})
	if !errors.Is(err, ErrMissingSymbol) {
		t.Errorf("expected ErrMissingSymbol, got %v", err)
	}
}

func TestFormatQuoteInvalidNumber(t *testing.T) {
	_, err := FormatQuote(feed.Quote{Symbol: "GOOG", Price: math.NaN(), Change: 0})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestFormatQuoteUpdate(t *testing.T) {
	price := 65.78
	change := 1.51
	got, err := FormatQuoteUpdate(feed.QuoteUpdate{Symbol: "AAPL", Price: &price, Change: &change})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", got.Symbol)
	}
	if got.Price == nil || *got.Price != "$65.78" {
		t.Errorf("expected price $65.78, got %v", got.Price)
	}
	if got.Change == nil || *got.Change != "+1.51" {
		t.Errorf("expected change +1.51, got %v", got.Change)
	}
}

func TestFormatQuoteUpdatePartial(t *testing.T) {
	price := 10.0
	got, err := FormatQuoteUpdate(feed.QuoteUpdate{Symbol: "TSLA", Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Price == nil || *got.Price != "$10.00" {
		t.Errorf("expected price $10.00, got %v", got.Price)
	}
	if got.Change != nil {
		t.Errorf("expected nil change, got %v", *got.Change)
	}
}

func TestFormatQuoteUpdateEmpty(t *testing.T) {
	_, err := FormatQuoteUpdate(feed.QuoteUpdate{Symbol: "TSLA"})
	if !errors.Is(err, ErrMalformedUpdate) {
		t.Errorf("expected ErrMalformedUpdate, got %v", err)
	}
}

func TestFormatQuoteUpdateMissingSymbol(t *testing.T) {
	price := 10.0
	_, err := FormatQuoteUpdate(feed.QuoteUpdate{Price: &price})
	if !errors.Is(err, ErrMissingSymbol) {
		t.Errorf("expected ErrMissingSymbol, got %v", err)
	}
}
