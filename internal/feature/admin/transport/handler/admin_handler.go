// Package handler provides the HTTP handlers for the admin feature.
// Every route here sits behind both AuthRequired and AdminRequired.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
)

// AdminUsecase defines the cross-user listings the handler needs.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]authentity.User, error)
	ListAllHoldings(ctx context.Context) ([]portfolioentity.Holding, error)
}

// AdminHandler handles the admin-only HTTP routes.
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard answers the admin landing request.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Admin Dashboard"})
}

// ListUsers returns every registered account.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("admin user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListPortfolios returns every holding across all users.
func (h *AdminHandler) ListPortfolios(c *gin.Context) {
	holdings, err := h.admin.ListAllHoldings(c.Request.Context())
	if err != nil {
		slog.Error("admin portfolio listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch portfolios"})
		return
	}
	c.JSON(http.StatusOK, holdings)
}
