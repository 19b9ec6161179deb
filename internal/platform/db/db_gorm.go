package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	historyentity "portfolio_backend/internal/feature/history/domain/entity"
	marketentity "portfolio_backend/internal/feature/market/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	watchlistentity "portfolio_backend/internal/feature/watchlist/domain/entity"
	"portfolio_backend/internal/platform/config"
)

// Open connects to MySQL with the injected settings, retrying for up to a
// minute so the server survives a database that is still starting.
func Open(cfg config.DBConfig, runMigrations bool) *gorm.DB {
	// clientFoundRows makes RowsAffected count matched rows instead of
	// changed rows, so a no-change UPDATE is not mistaken for a missing row.
	var dsn string
	if cfg.InstanceConnectionName != "" {
		dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.InstanceConnectionName, cfg.Name)
	} else {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError turns driver duplicate-key errors into
		// gorm.ErrDuplicatedKey so adapters can map them uniformly.
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates every table the application owns.
// The three top-100 tables share one model and differ only by table name.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&portfolioentity.Holding{},
		&watchlistentity.Entry{},
		&historyentity.Record{},
	); err != nil {
		return err
	}
	for _, table := range marketentity.TopListTables() {
		if err := db.Table(table).AutoMigrate(&marketentity.TopStock{}); err != nil {
			return err
		}
	}
	return nil
}
