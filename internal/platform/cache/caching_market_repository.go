package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio_backend/internal/feature/market/domain/entity"
	"portfolio_backend/internal/feature/market/usecase"
)

// CachingMarketRepository decorates a MarketRepository with a Redis
// read-through cache for quotes. News and symbol listings pass straight
// through; only quote lookups are hot enough to be worth caching.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository は MarketRepository を Redis キャッシュでデコレートします。
// ttl=0 の場合は 5分にフォールバックします。namespace が空なら "quotes" を使います。
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetNews passes through to the provider.
func (c *CachingMarketRepository) GetNews(ctx context.Context) ([]entity.NewsItem, error) {
	return c.inner.GetNews(ctx)
}

// GetSymbols passes through to the provider.
func (c *CachingMarketRepository) GetSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	return c.inner.GetSymbols(ctx, exchange)
}

// GetQuote serves from Redis when possible and falls back to the provider,
// storing the fresh quote best-effort.
func (c *CachingMarketRepository) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	// Redis 未設定なら素通し
	if c.rdb == nil {
		return c.inner.GetQuote(ctx, symbol)
	}

	key := c.quoteKey(symbol)

	// 1) キャッシュヒット確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var q entity.Quote
		if err := json.Unmarshal(b, &q); err == nil {
			return &q, nil
		}
		// 壊れていたら落とす
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) プロバイダーへフォールバック
	q, err := c.inner.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュ保存（ベストエフォート）
	if b, err := json.Marshal(q); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return q, nil
}

func (c *CachingMarketRepository) quoteKey(symbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(symbol))
}

func safe(s string) string {
	// Redis キーに使いづらい記号の簡易エスケープ
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
