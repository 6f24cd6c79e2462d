package database

import (
	"fmt"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	applog "ecotrack_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the driver specific connection string.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return postgres.Open(DSN(cfg))
	}
	return mysql.Open(DSN(cfg))
}

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	logLevel := logger.Info
	if mode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	applog.L().Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate creates or updates the schema and seeds static content.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.EcoPoint{},
		&model.Badge{},
		&model.Tip{},
	)
	if err != nil {
		return err
	}

	applog.L().Info("Database migration completed")
	return SeedTips(db)
}

// SeedTips fills the tips table on first start only.
func SeedTips(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Tip{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tips := make([]model.Tip, len(model.DefaultTips))
	copy(tips, model.DefaultTips)
	if err := db.Create(&tips).Error; err != nil {
		return err
	}

	applog.L().Info("Seeded default tips", zap.Int("count", len(tips)))
	return nil
}
