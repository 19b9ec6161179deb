package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// mockPortfolioUsecase is a mock implementation of the PortfolioUsecase interface.
type mockPortfolioUsecase struct {
	ListFunc   func(ctx context.Context, userID uint) ([]entity.Holding, error)
	AddFunc    func(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error)
	UpdateFunc func(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error
	SellFunc   func(ctx context.Context, userID, holdingID uint) error
}

func (m *mockPortfolioUsecase) List(ctx context.Context, userID uint) ([]entity.Holding, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPortfolioUsecase) Add(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, symbol, quantity, buyPrice, buyDate)
	}
	return &entity.Holding{UserID: userID, StockSymbol: symbol, Quantity: quantity, BuyPrice: buyPrice}, nil
}

func (m *mockPortfolioUsecase) Update(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, holdingID, quantity, buyPrice)
	}
	return nil
}

func (m *mockPortfolioUsecase) Sell(ctx context.Context, userID, holdingID uint) error {
	if m.SellFunc != nil {
		return m.SellFunc(ctx, userID, holdingID)
	}
	return nil
}

// asUser injects the authenticated identity the way the JWT middleware does.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func newRouter(h *PortfolioHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/api/portfolio", asUser(1))
	grp.GET("", h.List)
	grp.POST("/add", h.Add)
	grp.PUT("/update/:id", h.Update)
	grp.POST("/sell/:id", h.Sell)
	return r
}

func TestPortfolioHandler_List(t *testing.T) {
	t.Run("returns the user's holdings", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Holding, error) {
				assert.Equal(t, uint(1), userID)
				return []entity.Holding{{ID: 1, UserID: 1, StockSymbol: "AAPL"}}, nil
			},
		}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/portfolio", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AAPL")
	})

	t.Run("repository error yields 500", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Holding, error) {
				return nil, errors.New("database down")
			},
		}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/portfolio", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPortfolioHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockAddFunc    func(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error)
		expectedStatus int
	}{
		{
			name:        "success: holding created",
			requestBody: gin.H{"stock_symbol": "aapl", "quantity": "5", "buy_price": "187.5", "buy_date": "2024-03-01"},
			mockAddFunc: func(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error) {
				return &entity.Holding{ID: 1, UserID: userID, StockSymbol: "AAPL", Quantity: quantity, BuyPrice: buyPrice, BuyDate: buyDate}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing symbol",
			requestBody:    gin.H{"quantity": "5", "buy_price": "187.5"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: malformed buy_date",
			requestBody:    gin.H{"stock_symbol": "AAPL", "quantity": "5", "buy_price": "187.5", "buy_date": "03/01/2024"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: non-positive quantity",
			requestBody: gin.H{"stock_symbol": "AAPL", "quantity": "0", "buy_price": "187.5"},
			mockAddFunc: func(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error) {
				return nil, usecase.ErrInvalidQuantity
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: repository error",
			requestBody: gin.H{"stock_symbol": "AAPL", "quantity": "5", "buy_price": "187.5"},
			mockAddFunc: func(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error) {
				return nil, errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{AddFunc: tt.mockAddFunc}))

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/portfolio/add", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPortfolioHandler_Update(t *testing.T) {
	t.Run("success: holding updated", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			UpdateFunc: func(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, uint(7), holdingID)
				return nil
			},
		}))

		body, _ := json.Marshal(gin.H{"quantity": "20", "buy_price": "99.99"})
		req, _ := http.NewRequest(http.MethodPut, "/api/portfolio/update/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing holding yields 404", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			UpdateFunc: func(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error {
				return usecase.ErrHoldingNotFound
			},
		}))

		body, _ := json.Marshal(gin.H{"quantity": "20", "buy_price": "99.99"})
		req, _ := http.NewRequest(http.MethodPut, "/api/portfolio/update/999", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{}))

		body, _ := json.Marshal(gin.H{"quantity": "20", "buy_price": "99.99"})
		req, _ := http.NewRequest(http.MethodPut, "/api/portfolio/update/abc", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPortfolioHandler_Sell(t *testing.T) {
	t.Run("success: holding sold", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			SellFunc: func(ctx context.Context, userID, holdingID uint) error {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, uint(3), holdingID)
				return nil
			},
		}))

		req, _ := http.NewRequest(http.MethodPost, "/api/portfolio/sell/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Stock sold and moved to history")
	})

	t.Run("missing holding yields 404", func(t *testing.T) {
		router := newRouter(NewPortfolioHandler(&mockPortfolioUsecase{
			SellFunc: func(ctx context.Context, userID, holdingID uint) error {
				return usecase.ErrHoldingNotFound
			},
		}))

		req, _ := http.NewRequest(http.MethodPost, "/api/portfolio/sell/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
