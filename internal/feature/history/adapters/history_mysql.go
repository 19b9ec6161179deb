// Package adapters provides repository implementations for the history feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"portfolio_backend/internal/feature/history/domain/entity"
	"portfolio_backend/internal/feature/history/usecase"
)

// historyMySQL はRecordRepositoryインターフェースのMySQL実装です。
// 台帳は追記専用のため、読み取りのみを提供します。
type historyMySQL struct {
	db *gorm.DB
}

var _ usecase.RecordRepository = (*historyMySQL)(nil)

// NewHistoryMySQL は指定されたgorm.DB接続でhistoryMySQLの新しいインスタンスを生成します。
func NewHistoryMySQL(db *gorm.DB) *historyMySQL {
	return &historyMySQL{db: db}
}

// ListByUser は指定ユーザーの取引履歴を新しい順で返します。
func (r *historyMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Record, error) {
	var records []entity.Record
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
