// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/watchlist/domain/entity"
	"portfolio_backend/internal/feature/watchlist/transport/http/dto"
	"portfolio_backend/internal/feature/watchlist/usecase"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// WatchlistUsecase defines the tracked-symbol operations the handler needs.
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type WatchlistUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Entry, error)
	Add(ctx context.Context, userID uint, symbol string) (*entity.Entry, error)
	Remove(ctx context.Context, userID, entryID uint) error
	MoveToPortfolio(ctx context.Context, userID, entryID uint) error
}

// WatchlistHandler handles HTTP requests for tracked symbols.
type WatchlistHandler struct {
	watchlist WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(watchlist WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// List returns every symbol the authenticated user tracks.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID := jwtmw.UserID(c)
	entries, err := h.watchlist.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("watchlist fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch watchlist"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Add starts tracking a symbol, answering 409 when it is already tracked.
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := jwtmw.UserID(c)
	entry, err := h.watchlist.Add(c.Request.Context(), userID, req.StockSymbol)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSymbolRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrSymbolAlreadyWatched):
			c.JSON(http.StatusConflict, gin.H{"error": "symbol is already in your watchlist"})
		default:
			slog.Error("watchlist add failed", "error", err, "user_id", userID, "symbol", req.StockSymbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add to watchlist"})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Remove stops tracking an entry. A second remove of the same entry is a 404.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	entryID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist entry id"})
		return
	}

	userID := jwtmw.UserID(c)
	if err := h.watchlist.Remove(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found in watchlist"})
			return
		}
		slog.Error("watchlist remove failed", "error", err, "user_id", userID, "entry_id", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove from watchlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist successfully"})
}

// MoveToPortfolio converts an entry into a one-share holding atomically.
func (h *WatchlistHandler) MoveToPortfolio(c *gin.Context) {
	entryID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist entry id"})
		return
	}

	userID := jwtmw.UserID(c)
	if err := h.watchlist.MoveToPortfolio(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found in watchlist"})
			return
		}
		slog.Error("move to portfolio failed", "error", err, "user_id", userID, "entry_id", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not move entry to portfolio"})
		return
	}
	slog.Info("watchlist entry moved to portfolio", "user_id", userID, "entry_id", entryID)
	c.JSON(http.StatusOK, gin.H{"message": "Moved to portfolio"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
