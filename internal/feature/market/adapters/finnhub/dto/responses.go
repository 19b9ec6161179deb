// Package dto defines data transfer objects for Finnhub API responses.
package dto

// QuoteResponse represents the JSON response from the /quote endpoint.
type QuoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// NewsItemResponse represents one element of the /news endpoint's array.
type NewsItemResponse struct {
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

// SymbolResponse represents one element of the /stock/symbol endpoint's array.
type SymbolResponse struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
}
