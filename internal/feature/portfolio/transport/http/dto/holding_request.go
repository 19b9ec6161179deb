// Package dto はportfolioフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "github.com/shopspring/decimal"

// AddHoldingReq は/api/portfolioへのPOSTリクエストボディを表します。
// 数量と単価はJSONの数値・文字列どちらでも受け付けます。
// buy_dateは"2006-01-02"形式で、省略時は当日扱いです。
type AddHoldingReq struct {
	StockSymbol string          `json:"stock_symbol" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	BuyPrice    decimal.Decimal `json:"buy_price"`
	BuyDate     string          `json:"buy_date"`
}

// UpdateHoldingReq は/api/portfolio/:idへのPUTリクエストボディを表します。
type UpdateHoldingReq struct {
	Quantity decimal.Decimal `json:"quantity"`
	BuyPrice decimal.Decimal `json:"buy_price"`
}
