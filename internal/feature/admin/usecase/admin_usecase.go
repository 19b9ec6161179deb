// Package usecase implements the business logic for the admin feature.
package usecase

import (
	"context"

	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
)

// AdminRepository abstracts the cross-user read queries only admins may run.
type AdminRepository interface {
	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]authentity.User, error)

	// ListAllHoldings returns every holding across all users.
	ListAllHoldings(ctx context.Context) ([]portfolioentity.Holding, error)
}

// adminUsecase exposes cross-user listings to the admin routes.
type adminUsecase struct {
	repo AdminRepository
}

// NewAdminUsecase creates a new adminUsecase instance.
func NewAdminUsecase(repo AdminRepository) *adminUsecase {
	return &adminUsecase{repo: repo}
}

// ListUsers returns every registered account.
func (u *adminUsecase) ListUsers(ctx context.Context) ([]authentity.User, error) {
	return u.repo.ListUsers(ctx)
}

// ListAllHoldings returns every holding across all users.
func (u *adminUsecase) ListAllHoldings(ctx context.Context) ([]portfolioentity.Holding, error) {
	return u.repo.ListAllHoldings(ctx)
}
