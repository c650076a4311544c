package database

import (
	"errors"
	"fmt"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/config"
	"vraee_backend/internal/logger"
	"vraee_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect открывает подключение к БД по настройкам конфига.
// Канонический бэкенд - postgres, sqlite остается для локальной
// разработки и тестов. TranslateError нужен, чтобы репозитории
// получали gorm.ErrDuplicatedKey вместо сырых ошибок драйвера.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Type {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type: %q", cfg.Database.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	logger.Info("AutoMigrate completed")
	return nil
}

// Seed создает стартовые учетки, если их еще нет. Идемпотентен:
// повторный запуск ничего не меняет.
func Seed(db *gorm.DB) error {
	seeds := []models.User{
		{
			Email:    "test@example.com",
			Role:     models.UserRoleUser,
			Status:   models.UserStatusActive,
			FullName: "Test User",
		},
		{
			Email:       "admin@vraee.com",
			Role:        models.UserRoleAdmin,
			Status:      models.UserStatusActive,
			FullName:    "Vraee Admin",
			CompanyName: "Vraee Jewelry Studio",
		},
	}
	passwords := map[string]string{
		"test@example.com": "password123",
		"admin@vraee.com":  "admin123",
	}

	for i := range seeds {
		seed := seeds[i]

		var existing models.User
		result := db.Where("email = ?", seed.Email).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check seed user %s: %w", seed.Email, result.Error)
		}

		hash, err := auth.HashPassword(passwords[seed.Email])
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		seed.PasswordHash = hash

		if err := db.Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", seed.Email, err)
		}
		logger.Info("Seeded user", "email", seed.Email, "role", seed.Role)
	}
	return nil
}
