// Package handler provides the HTTP handlers for the history feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/history/domain/entity"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// HistoryUsecase defines the ledger operations the handler needs.
type HistoryUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Record, error)
}

// HistoryHandler handles HTTP requests for the trade ledger.
type HistoryHandler struct {
	history HistoryUsecase
}

// NewHistoryHandler creates a new HistoryHandler instance.
func NewHistoryHandler(history HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List returns the authenticated user's trade history, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	userID := jwtmw.UserID(c)
	records, err := h.history.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("history fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, records)
}
