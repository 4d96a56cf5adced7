// Package testdb opens an in-memory sqlite database carrying the production schema.
package testdb

import (
	budgetDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/budget"
	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	expenseDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/expense"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh database. Every :memory: connection is a separate database,
// so the pool is pinned to a single connection.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userDatamodel.User{},
		&categoryDatamodel.Category{},
		&expenseDatamodel.Expense{},
		&budgetDatamodel.Budget{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedUser inserts a user row and returns its id.
func SeedUser(db *gorm.DB, email string) (int64, error) {
	u := &userDatamodel.User{Email: email, PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		return 0, err
	}
	return u.ID, nil
}
