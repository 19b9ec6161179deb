// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/transport/http/dto"
	"portfolio_backend/internal/feature/portfolio/usecase"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// buyDateLayout はbuy_dateフィールドの受け付け形式です。
const buyDateLayout = "2006-01-02"

// PortfolioUsecase は保有銘柄操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type PortfolioUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Holding, error)
	Add(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error)
	Update(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error
	Sell(ctx context.Context, userID, holdingID uint) error
}

// PortfolioHandler は保有銘柄のHTTPリクエストを処理します。
type PortfolioHandler struct {
	portfolio PortfolioUsecase
}

// NewPortfolioHandler はPortfolioHandlerの新しいインスタンスを生成します。
func NewPortfolioHandler(portfolio PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// List は認証済みユーザーの全保有銘柄を返します。
func (h *PortfolioHandler) List(c *gin.Context) {
	userID := jwtmw.UserID(c)
	holdings, err := h.portfolio.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("portfolio fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch portfolio"})
		return
	}
	c.JSON(http.StatusOK, holdings)
}

// Add は新しい保有銘柄（ロット）を追加します。
func (h *PortfolioHandler) Add(c *gin.Context) {
	var req dto.AddHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buyDate time.Time
	if req.BuyDate != "" {
		var err error
		buyDate, err = time.Parse(buyDateLayout, req.BuyDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "buy_date must be formatted as YYYY-MM-DD"})
			return
		}
	}

	userID := jwtmw.UserID(c)
	holding, err := h.portfolio.Add(c.Request.Context(), userID, req.StockSymbol, req.Quantity, req.BuyPrice, buyDate)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("add holding failed", "error", err, "user_id", userID, "symbol", req.StockSymbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add stock"})
		}
		return
	}
	c.JSON(http.StatusCreated, holding)
}

// Update は保有者本人の行に限り数量と取得単価を更新します。
func (h *PortfolioHandler) Update(c *gin.Context) {
	holdingID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holding id"})
		return
	}

	var req dto.UpdateHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := jwtmw.UserID(c)
	if err := h.portfolio.Update(c.Request.Context(), userID, holdingID, req.Quantity, req.BuyPrice); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrHoldingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
		default:
			slog.Error("update holding failed", "error", err, "user_id", userID, "holding_id", holdingID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update stock"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully!"})
}

// Sell は保有銘柄を売却し、SELL履歴を残して行を削除します。
func (h *PortfolioHandler) Sell(c *gin.Context) {
	holdingID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holding id"})
		return
	}

	userID := jwtmw.UserID(c)
	if err := h.portfolio.Sell(c.Request.Context(), userID, holdingID); err != nil {
		if errors.Is(err, usecase.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("sell failed", "error", err, "user_id", userID, "holding_id", holdingID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sell stock"})
		return
	}
	slog.Info("holding sold", "user_id", userID, "holding_id", holdingID)
	c.JSON(http.StatusOK, gin.H{"message": "Stock sold and moved to history"})
}

// parseID はパスパラメータ:idを数値IDに変換します。
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
