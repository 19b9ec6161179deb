// Package entity defines the domain entities for the history feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recorded in the ledger.
const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)

// Record is one immutable row of the trade ledger. Records are written only
// inside portfolio transactions and are never updated or deleted afterwards.
type Record struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	StockSymbol string          `gorm:"size:16;not null" json:"stock_symbol"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`

	// TransactionType is TransactionBuy or TransactionSell.
	TransactionType string `gorm:"size:8;not null" json:"transaction_type"`

	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
}

// TableName maps the entity onto the stock_history table.
func (Record) TableName() string { return "stock_history" }
