// Package dto defines data transfer objects for the watchlist feature's HTTP transport layer.
package dto

// AddEntryReq represents the request body for POST /api/watchlist.
type AddEntryReq struct {
	StockSymbol string `json:"stock_symbol" binding:"required"`
}
