package ticker

// DisplayQuote is a fully formatted quote ready for rendering.
type DisplayQuote struct {
	Symbol string
	Name   string
	Price  string
	Change string
}

// DisplayUpdate carries the formatted fields of a quote that changed.
// A nil field means the value did not change; the render sink merges
// the present fields onto the record it retained for Symbol.
type DisplayUpdate struct {
	Symbol string
	Price  *string
	Change *string
}
