package ticker

import (
	"github.com/tapeworks/tickertape/internal/feed"
	"github.com/tapeworks/tickertape/internal/fn"
)

// NamedQuote is the intermediate form of a quote after the display
// name has been attached but before the numbers are formatted.
type NamedQuote struct {
	feed.Quote
	Name string
}

// AddDisplayName returns a named copy of q. The display name defaults
// to the symbol; the input is never modified.
func AddDisplayName(q feed.Quote) NamedQuote {
	return NamedQuote{Quote: q, Name: q.Symbol}
}

// FormatNumbers formats the price and change of a named quote. The two
// fields are independent updates; neither depends on the other.
func FormatNumbers(n NamedQuote) (DisplayQuote, error) {
	if n.Symbol == "" {
		return DisplayQuote{}, ErrMissingSymbol
	}
	price, err := FormatPrice(n.Price)
	if err != nil {
		return DisplayQuote{}, err
	}
	change, err := FormatChange(n.Change)
	if err != nil {
		return DisplayQuote{}, err
	}
	return DisplayQuote{
		Symbol: n.Symbol,
		Name:   n.Name,
		Price:  price,
		Change: change,
	}, nil
}

// FormatQuote is the full transform for a newly listed symbol: attach
// the display name, then format the numeric fields.
var FormatQuote = fn.Pipe2(fn.Lift(AddDisplayName), FormatNumbers)

// FormatQuoteUpdate formats the fields present on a partial update.
// The display name is fixed at listing time, so updates never carry one.
func FormatQuoteUpdate(u feed.QuoteUpdate) (DisplayUpdate, error) {
	if u.Symbol == "" {
		return DisplayUpdate{}, ErrMissingSymbol
	}
	if u.Price == nil && u.Change == nil {
		return DisplayUpdate{}, ErrMalformedUpdate
	}

	out := DisplayUpdate{Symbol: u.Symbol}
	if u.Price != nil {
		price, err := FormatPrice(*u.Price)
		if err != nil {
			return DisplayUpdate{}, err
		}
		out.Price = &price
	}
	if u.Change != nil {
		change, err := FormatChange(*u.Change)
		if err != nil {
			return DisplayUpdate{}, err
		}
		out.Change = &change
	}
	return out, nil
}
