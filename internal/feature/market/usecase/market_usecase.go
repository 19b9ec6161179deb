package usecase

import (
	"context"
	"strings"

	"portfolio_backend/internal/feature/market/domain/entity"
)

// MarketRepository abstracts the external market-data provider.
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type MarketRepository interface {
	// GetNews fetches the provider's general market news feed.
	GetNews(ctx context.Context) ([]entity.NewsItem, error)

	// GetSymbols lists common-stock listings for one exchange code.
	GetSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error)

	// GetQuote fetches the latest quote for one symbol.
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// TopListRepository abstracts the static top-100 constituent tables.
type TopListRepository interface {
	// ListTop returns a region's constituents ordered by company name.
	ListTop(ctx context.Context, region entity.Region) ([]entity.TopStock, error)
}

// marketUsecase validates inputs and delegates to the provider or the
// top-100 tables. It holds no state of its own.
type marketUsecase struct {
	market  MarketRepository
	topList TopListRepository
}

// NewMarketUsecase creates a new marketUsecase instance.
func NewMarketUsecase(market MarketRepository, topList TopListRepository) *marketUsecase {
	return &marketUsecase{market: market, topList: topList}
}

// GetNews returns the general market news feed.
func (u *marketUsecase) GetNews(ctx context.Context) ([]entity.NewsItem, error) {
	return u.market.GetNews(ctx)
}

// GetSymbols returns the listings for an exchange such as "US", "NS" or "BO".
func (u *marketUsecase) GetSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	if exchange == "" {
		return nil, ErrExchangeRequired
	}
	return u.market.GetSymbols(ctx, strings.ToUpper(exchange))
}

// GetQuote returns the latest quote for a symbol, uppercased before lookup.
func (u *marketUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	return u.market.GetQuote(ctx, strings.ToUpper(symbol))
}

// GetTopList returns the constituents of one top-100 table.
func (u *marketUsecase) GetTopList(ctx context.Context, region entity.Region) ([]entity.TopStock, error) {
	if _, ok := entity.TableFor(region); !ok {
		return nil, ErrUnknownRegion
	}
	return u.topList.ListTop(ctx, region)
}
