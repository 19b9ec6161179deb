// Command seed prepares a fresh database: it runs migrations, upserts the
// admin account and fills the three top-100 tables with starter rows.
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	marketentity "portfolio_backend/internal/feature/market/domain/entity"
	"portfolio_backend/internal/platform/config"
	infradb "portfolio_backend/internal/platform/db"
)

// starter constituents per region; real deployments load the full lists.
var topStocks = map[string][]marketentity.TopStock{
	"us_top_100": {
		{CompanyName: "Apple Inc.", TickerSymbol: "AAPL"},
		{CompanyName: "Microsoft Corporation", TickerSymbol: "MSFT"},
		{CompanyName: "Alphabet Inc.", TickerSymbol: "GOOGL"},
		{CompanyName: "Amazon.com Inc.", TickerSymbol: "AMZN"},
		{CompanyName: "NVIDIA Corporation", TickerSymbol: "NVDA"},
		{CompanyName: "Meta Platforms Inc.", TickerSymbol: "META"},
		{CompanyName: "Tesla Inc.", TickerSymbol: "TSLA"},
		{CompanyName: "Berkshire Hathaway Inc.", TickerSymbol: "BRK.B"},
		{CompanyName: "JPMorgan Chase & Co.", TickerSymbol: "JPM"},
		{CompanyName: "Johnson & Johnson", TickerSymbol: "JNJ"},
	},
	"nifty_top_100": {
		{CompanyName: "Reliance Industries", TickerSymbol: "RELIANCE"},
		{CompanyName: "Tata Consultancy Services", TickerSymbol: "TCS"},
		{CompanyName: "HDFC Bank", TickerSymbol: "HDFCBANK"},
		{CompanyName: "Infosys", TickerSymbol: "INFY"},
		{CompanyName: "ICICI Bank", TickerSymbol: "ICICIBANK"},
		{CompanyName: "Hindustan Unilever", TickerSymbol: "HINDUNILVR"},
		{CompanyName: "State Bank of India", TickerSymbol: "SBIN"},
		{CompanyName: "Bharti Airtel", TickerSymbol: "BHARTIARTL"},
	},
	"sensex_top_100": {
		{CompanyName: "Reliance Industries", TickerSymbol: "RELIANCE"},
		{CompanyName: "Tata Consultancy Services", TickerSymbol: "TCS"},
		{CompanyName: "HDFC Bank", TickerSymbol: "HDFCBANK"},
		{CompanyName: "Larsen & Toubro", TickerSymbol: "LT"},
		{CompanyName: "Axis Bank", TickerSymbol: "AXISBANK"},
		{CompanyName: "Mahindra & Mahindra", TickerSymbol: "M&M"},
	},
}

func main() {
	cfg := config.Load()

	db := infradb.Open(cfg.DB, false)
	if err := infradb.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := seedTopStocks(db); err != nil {
		log.Fatalf("seed top-100 tables failed: %v", err)
	}

	log.Println("seed ok")
}

// seedAdmin upserts the admin account. The password comes from
// SEED_ADMIN_PASSWORD so no credential ships in the binary.
func seedAdmin(db *gorm.DB) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Println("SEED_ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authentity.User{
		Username: "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		IsAdmin:  true,
	}
	return db.Where(authentity.User{Email: admin.Email}).
		Attrs(admin).
		FirstOrCreate(&authentity.User{}).Error
}

// seedTopStocks inserts starter constituents, skipping rows already present.
func seedTopStocks(db *gorm.DB) error {
	for table, stocks := range topStocks {
		for _, s := range stocks {
			err := db.Table(table).
				Where(marketentity.TopStock{TickerSymbol: s.TickerSymbol}).
				Attrs(s).
				FirstOrCreate(&marketentity.TopStock{}).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}
