// Package entity defines the domain entities for the portfolio feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one lot of a symbol owned by a single user.
// The same symbol may appear in several rows; each buy is its own lot.
type Holding struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	// StockSymbol is the ticker the lot was bought under, stored uppercase.
	StockSymbol string `gorm:"size:16;not null" json:"stock_symbol"`

	// Quantity is the number of shares in the lot. Always positive.
	Quantity decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`

	// BuyPrice is the per-share price paid. Never negative.
	BuyPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"buy_price"`

	// BuyDate is the acquisition date reported by the caller.
	BuyDate time.Time `gorm:"not null" json:"buy_date"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName maps the entity onto the portfolio table.
func (Holding) TableName() string { return "portfolio" }
