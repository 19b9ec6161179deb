// Package finnhub provides a client for the Finnhub market-data API.
package finnhub

import "time"

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey  string        // API key sent as the token query parameter
	BaseURL string        // Base URL for the API (e.g. "https://finnhub.io/api/v1")
	Timeout time.Duration // HTTP request timeout
}
