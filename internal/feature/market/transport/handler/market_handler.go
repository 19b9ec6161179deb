// Package handler provides the HTTP handlers for the market feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/market/domain/entity"
	"portfolio_backend/internal/feature/market/usecase"
)

// MarketUsecase defines the market-data operations the handler needs.
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type MarketUsecase interface {
	GetNews(ctx context.Context) ([]entity.NewsItem, error)
	GetSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetTopList(ctx context.Context, region entity.Region) ([]entity.TopStock, error)
}

// MarketHandler proxies market-data requests. All routes are public.
type MarketHandler struct {
	market MarketUsecase
}

// NewMarketHandler creates a new MarketHandler instance.
func NewMarketHandler(market MarketUsecase) *MarketHandler {
	return &MarketHandler{market: market}
}

// GetNews returns the provider's general market news feed.
func (h *MarketHandler) GetNews(c *gin.Context) {
	news, err := h.market.GetNews(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "failed to fetch market news")
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetSymbols returns the common-stock listings for ?exchange=XX.
func (h *MarketHandler) GetSymbols(c *gin.Context) {
	exchange := c.Query("exchange")
	symbols, err := h.market.GetSymbols(c.Request.Context(), exchange)
	if err != nil {
		if errors.Is(err, usecase.ErrExchangeRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "exchange query parameter is required (e.g. ?exchange=US)"})
			return
		}
		h.upstreamError(c, err, "failed to fetch stock symbols")
		return
	}
	c.JSON(http.StatusOK, symbols)
}

// GetQuote returns the latest quote for /quote/:symbol.
func (h *MarketHandler) GetQuote(c *gin.Context) {
	quote, err := h.market.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock symbol is required"})
			return
		}
		h.upstreamError(c, err, "failed to fetch quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetTopList reads the static top-100 table for /top100/:region.
func (h *MarketHandler) GetTopList(c *gin.Context) {
	region := entity.Region(c.Param("region"))
	stocks, err := h.market.GetTopList(c.Request.Context(), region)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownRegion) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown top-100 region"})
			return
		}
		slog.Error("top-100 fetch failed", "error", err, "region", region)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch top-100 stocks"})
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// upstreamError forwards the provider's status when known and falls back to
// a generic 500 for transport failures.
func (h *MarketHandler) upstreamError(c *gin.Context, err error, msg string) {
	var upstream *usecase.UpstreamError
	if errors.As(err, &upstream) {
		slog.Warn("market provider error", "status", upstream.StatusCode, "path", c.FullPath())
		c.JSON(upstream.StatusCode, gin.H{"error": msg})
		return
	}
	slog.Error("market request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
