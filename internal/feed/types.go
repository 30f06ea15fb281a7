package feed

// Quote is a full quote for a newly listed symbol.
type Quote struct {
	Symbol string
	Price  float64
	Change float64
}

// QuoteUpdate carries the fields of a quote that changed.
// A nil field means the value did not change.
type QuoteUpdate struct {
	Symbol string
	Price  *float64
	Change *float64
}

// Source is a push-based feed of listings and updates.
// Implementations close both channels when the feed shuts down.
type Source interface {
	// Listings delivers full quotes for symbols entering the feed.
	Listings() <-chan Quote
	// Updates delivers partial quotes for symbols already listed.
	Updates() <-chan QuoteUpdate
}
