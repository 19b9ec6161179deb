// Package adapters provides repository implementations for the admin feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"portfolio_backend/internal/feature/admin/usecase"
	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
)

// adminMySQL はAdminRepositoryインターフェースのMySQL実装です。
type adminMySQL struct {
	db *gorm.DB
}

var _ usecase.AdminRepository = (*adminMySQL)(nil)

// NewAdminMySQL は指定されたgorm.DB接続でadminMySQLの新しいインスタンスを生成します。
func NewAdminMySQL(db *gorm.DB) *adminMySQL {
	return &adminMySQL{db: db}
}

// ListUsers は全ユーザーを返します。パスワードハッシュはJSONに出ません。
func (r *adminMySQL) ListUsers(ctx context.Context) ([]authentity.User, error) {
	var users []authentity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListAllHoldings は全ユーザーの保有銘柄を返します。
func (r *adminMySQL) ListAllHoldings(ctx context.Context) ([]portfolioentity.Holding, error) {
	var holdings []portfolioentity.Holding
	if err := r.db.WithContext(ctx).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}
