package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"portfolio_backend/internal/app/router"
	adminadapters "portfolio_backend/internal/feature/admin/adapters"
	adminhandler "portfolio_backend/internal/feature/admin/transport/handler"
	adminusecase "portfolio_backend/internal/feature/admin/usecase"
	authadapters "portfolio_backend/internal/feature/auth/adapters"
	authhandler "portfolio_backend/internal/feature/auth/transport/handler"
	authusecase "portfolio_backend/internal/feature/auth/usecase"
	historyadapters "portfolio_backend/internal/feature/history/adapters"
	historyhandler "portfolio_backend/internal/feature/history/transport/handler"
	historyusecase "portfolio_backend/internal/feature/history/usecase"
	marketadapters "portfolio_backend/internal/feature/market/adapters"
	"portfolio_backend/internal/feature/market/adapters/finnhub"
	markethandler "portfolio_backend/internal/feature/market/transport/handler"
	marketusecase "portfolio_backend/internal/feature/market/usecase"
	portfolioadapters "portfolio_backend/internal/feature/portfolio/adapters"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "portfolio_backend/internal/feature/portfolio/usecase"
	watchlistadapters "portfolio_backend/internal/feature/watchlist/adapters"
	watchlisthandler "portfolio_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "portfolio_backend/internal/feature/watchlist/usecase"
	"portfolio_backend/internal/platform/cache"
	"portfolio_backend/internal/platform/config"
	infradb "portfolio_backend/internal/platform/db"
	infrahttp "portfolio_backend/internal/platform/http"
	infraredis "portfolio_backend/internal/platform/redis"
	jwtmw "portfolio_backend/internal/platform/jwt"
	"portfolio_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.Open(cfg.DB, cfg.RunMigrations)

	// Redis（無ければキャッシュなしで継続）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without quote cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	portfolioRepo := portfolioadapters.NewPortfolioMySQL(db)
	watchlistRepo := watchlistadapters.NewWatchlistMySQL(db)
	historyRepo := historyadapters.NewHistoryMySQL(db)
	topListRepo := marketadapters.NewTopListMySQL(db)
	adminRepo := adminadapters.NewAdminMySQL(db)

	// 外部API（Finnhub無料プランは60calls/分）
	finnhubCfg := finnhub.Config{
		APIKey:  cfg.FinnhubAPIKey,
		BaseURL: cfg.FinnhubBaseURL,
		Timeout: cfg.FinnhubTimeout,
	}
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)
	marketRepo := finnhub.NewClient(finnhubCfg, infrahttp.NewHTTPClient(finnhubCfg.Timeout), limiter)

	// Redisキャッシュでラップ
	cachedMarketRepo := cache.NewCachingMarketRepository(rdb, 5*time.Minute, marketRepo, "quotes")

	// JWT
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiry)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(portfolioRepo)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo)
	historyUC := historyusecase.NewHistoryUsecase(historyRepo)
	marketUC := marketusecase.NewMarketUsecase(cachedMarketRepo, topListRepo)
	adminUC := adminusecase.NewAdminUsecase(adminRepo)

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Portfolio: portfoliohandler.NewPortfolioHandler(portfolioUC),
		Watchlist: watchlisthandler.NewWatchlistHandler(watchlistUC),
		History:   historyhandler.NewHistoryHandler(historyUC),
		Market:    markethandler.NewMarketHandler(marketUC),
		Admin:     adminhandler.NewAdminHandler(adminUC),
	}

	// ルータ生成
	r := router.New(handlers, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
