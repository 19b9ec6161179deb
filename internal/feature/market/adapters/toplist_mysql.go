// Package adapters provides repository implementations for the market feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"portfolio_backend/internal/feature/market/domain/entity"
	"portfolio_backend/internal/feature/market/usecase"
)

// topListMySQL はTopListRepositoryインターフェースのMySQL実装です。
// 3つのtop-100テーブルは同じ構造を持ち、テーブル名だけが異なります。
type topListMySQL struct {
	db *gorm.DB
}

var _ usecase.TopListRepository = (*topListMySQL)(nil)

// NewTopListMySQL は指定されたgorm.DB接続でtopListMySQLの新しいインスタンスを生成します。
func NewTopListMySQL(db *gorm.DB) *topListMySQL {
	return &topListMySQL{db: db}
}

// ListTop は指定リージョンの構成銘柄を会社名順で返します。
// 未知のリージョンの場合、usecase.ErrUnknownRegionを返します。
func (r *topListMySQL) ListTop(ctx context.Context, region entity.Region) ([]entity.TopStock, error) {
	table, ok := entity.TableFor(region)
	if !ok {
		return nil, usecase.ErrUnknownRegion
	}

	var stocks []entity.TopStock
	err := r.db.WithContext(ctx).
		Table(table).
		Order("company_name").
		Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}
