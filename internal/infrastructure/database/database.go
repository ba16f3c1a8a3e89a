package database

import (
	"fmt"
	"log"

	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by configuration. Postgres is the
// deployment target; the pure-Go sqlite driver backs single-terminal
// installs and tests.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	case "postgres", "":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q (use postgres or sqlite)", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver != "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	log.Printf("Connected to %s database", cfg.Driver)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedMenu loads the default menu on first boot. An already-populated
// catalog is left alone.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default menu...")

	items := []entity.MenuItem{
		{Name: "Paneer Butter Masala", Category: "Main Course", Price: 12000, GSTRate: 5, IsActive: true},
		{Name: "Dal Tadka", Category: "Main Course", Price: 10000, GSTRate: 5, IsActive: true},
		{Name: "Veg Biryani", Category: "Main Course", Price: 15000, GSTRate: 5, IsActive: true},
		{Name: "Chicken Biryani", Category: "Main Course", Price: 18000, GSTRate: 5, IsActive: true},
		{Name: "Chicken Curry", Category: "Main Course", Price: 20000, GSTRate: 5, IsActive: true},
		{Name: "Roti", Category: "Breads & Others", Price: 2000, GSTRate: 5, IsActive: true},
		{Name: "Naan", Category: "Breads & Others", Price: 2500, GSTRate: 5, IsActive: true},
		{Name: "Masala Dosa", Category: "Breads & Others", Price: 8000, GSTRate: 5, IsActive: true},
		{Name: "Rasgulla", Category: "Breads & Others", Price: 4000, GSTRate: 5, IsActive: true},
		{Name: "Cold Drinks", Category: "Breads & Others", Price: 5000, GSTRate: 18, IsActive: true},
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Printf("Seeded %d menu items", len(items))
	return nil
}
