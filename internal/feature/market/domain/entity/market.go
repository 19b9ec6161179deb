// Package entity defines the domain entities for the market feature.
package entity

// Quote is a point-in-time price snapshot for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`

	// Timestamp marks when the proxy fetched the quote, in unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// NewsItem is one article from the provider's general news feed.
type NewsItem struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Symbol describes one listing on an exchange.
type Symbol struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
}
