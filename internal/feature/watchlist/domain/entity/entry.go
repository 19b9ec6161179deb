// Package entity defines the domain entities for the watchlist feature.
package entity

import "time"

// Entry is one symbol a user tracks without owning it.
// A user can track a given symbol at most once.
type Entry struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_watchlist_user_symbol" json:"user_id"`

	// StockSymbol is stored uppercase.
	StockSymbol string `gorm:"size:16;not null;uniqueIndex:idx_watchlist_user_symbol" json:"stock_symbol"`

	CreatedAt time.Time `json:"-"`
}

// TableName maps the entity onto the watchlist table.
func (Entry) TableName() string { return "watchlist" }
