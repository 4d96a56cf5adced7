package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/budget-tracker/internal"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// sqlxDriver names the pgx stdlib driver so sqlx rebinds to $n placeholders.
const sqlxDriver = "pgx"

// initDB opens the gorm store and an sqlx handle sharing its pool.
func initDB(ctx context.Context, cfg internal.DatabaseConfig) (*gorm.DB, *sqlx.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.Source), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close the pool on failure
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gdb, sqlx.NewDb(sqlDB, sqlxDriver), nil
}
