package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhandler "portfolio_backend/internal/feature/admin/transport/handler"
	authhandler "portfolio_backend/internal/feature/auth/transport/handler"
	historyhandler "portfolio_backend/internal/feature/history/transport/handler"
	markethandler "portfolio_backend/internal/feature/market/transport/handler"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	watchlisthandler "portfolio_backend/internal/feature/watchlist/transport/handler"
	platformhandler "portfolio_backend/internal/platform/http/handler"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Portfolio *portfoliohandler.PortfolioHandler
	Watchlist *watchlisthandler.WatchlistHandler
	History   *historyhandler.HistoryHandler
	Market    *markethandler.MarketHandler
	Admin     *adminhandler.AdminHandler
}

// New builds the route table. jwtSecret is injected so the middleware carries
// no ambient configuration.
func New(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// SPAフロントエンドは別オリジンから呼び出す
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// 認証不要
	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	market := api.Group("/market")
	market.GET("/news", h.Market.GetNews)
	market.GET("/symbols", h.Market.GetSymbols)
	market.GET("/quote/:symbol", h.Market.GetQuote)
	market.GET("/top100/:region", h.Market.GetTopList)

	// 認証必須のルート
	protected := api.Group("/")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.GET("/auth/profile", h.Auth.GetProfile)
		protected.PUT("/auth/profile/update", h.Auth.UpdateProfile)
		protected.POST("/auth/change-password", h.Auth.ChangePassword)

		protected.GET("/portfolio", h.Portfolio.List)
		protected.POST("/portfolio", h.Portfolio.Add)
		protected.PUT("/portfolio/:id", h.Portfolio.Update)
		protected.DELETE("/portfolio/:id", h.Portfolio.Sell)

		protected.GET("/watchlist", h.Watchlist.List)
		protected.POST("/watchlist", h.Watchlist.Add)
		protected.DELETE("/watchlist/:id", h.Watchlist.Remove)
		protected.POST("/watchlist/:id/move", h.Watchlist.MoveToPortfolio)

		protected.GET("/history", h.History.List)
	}

	// 管理者専用ルート
	admin := api.Group("/admin")
	admin.Use(jwtmw.AuthRequired(jwtSecret), jwtmw.AdminRequired())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/portfolios", h.Admin.ListPortfolios)
	}

	return r
}
