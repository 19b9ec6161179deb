package finnhub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio_backend/internal/feature/market/adapters/finnhub/dto"
	"portfolio_backend/internal/feature/market/domain/entity"
	"portfolio_backend/internal/feature/market/usecase"
	"portfolio_backend/internal/shared/ratelimiter"
)

// Client はFinnhub APIから市場データを取得するMarketRepository実装です。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterは無料プランの1分あたりの呼び出し上限を守るために使用します（nil可）。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// GetNews fetches the general market news feed.
func (f *Client) GetNews(ctx context.Context) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("category", "general")

	var body []dto.NewsItemResponse
	if err := f.get(ctx, "/news", q, &body); err != nil {
		return nil, err
	}

	items := make([]entity.NewsItem, 0, len(body))
	for _, n := range body {
		items = append(items, entity.NewsItem{
			ID:       n.ID,
			Category: n.Category,
			Datetime: n.Datetime,
			Headline: n.Headline,
			Image:    n.Image,
			Related:  n.Related,
			Source:   n.Source,
			Summary:  n.Summary,
			URL:      n.URL,
		})
	}
	return items, nil
}

// GetSymbols fetches the listings for one exchange, keeping only common-stock
// style entries the way the web client expects.
func (f *Client) GetSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	q := url.Values{}
	q.Set("exchange", exchange)

	var body []dto.SymbolResponse
	if err := f.get(ctx, "/stock/symbol", q, &body); err != nil {
		return nil, err
	}

	symbols := make([]entity.Symbol, 0, len(body))
	for _, s := range body {
		if s.Type != "" && !strings.Contains(strings.ToUpper(s.Type), "STOCK") {
			continue
		}
		symbols = append(symbols, entity.Symbol{
			Symbol:        s.Symbol,
			DisplaySymbol: s.DisplaySymbol,
			Description:   s.Description,
			Type:          s.Type,
			Currency:      s.Currency,
		})
	}
	return symbols, nil
}

// GetQuote fetches the latest quote for one symbol and stamps it with the
// fetch time so clients can judge freshness.
func (f *Client) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.QuoteResponse
	if err := f.get(ctx, "/quote", q, &body); err != nil {
		return nil, err
	}

	return &entity.Quote{
		Symbol:        symbol,
		Current:       body.Current,
		Change:        body.Change,
		PercentChange: body.PercentChange,
		High:          body.High,
		Low:           body.Low,
		Open:          body.Open,
		PrevClose:     body.PrevClose,
		Timestamp:     time.Now().UnixMilli(),
	}, nil
}

// get issues one GET against the API and decodes the JSON body into out.
// Non-2xx replies become *usecase.UpstreamError so the transport layer can
// forward the provider's status.
func (f *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if f.limiter != nil {
		f.limiter.WaitIfNeeded()
	}

	q.Set("token", f.cfg.APIKey)
	u := f.cfg.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return &usecase.UpstreamError{StatusCode: res.StatusCode}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
