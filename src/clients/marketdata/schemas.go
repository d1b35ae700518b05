package marketdata

// globalQuoteResponse mirrors the provider's GLOBAL_QUOTE payload. The
// provider reports rate limiting through a "Note" field and bad tickers
// through "Error Message" rather than HTTP status codes.
type globalQuoteResponse struct {
	GlobalQuote  globalQuote `json:"Global Quote"`
	Note         string      `json:"Note"`
	ErrorMessage string      `json:"Error Message"`
}

type globalQuote struct {
	Symbol string `json:"01. symbol"`
	Price  string `json:"05. price"`
}
