package services_test

import (
	"fmt"
	"testing"
	"time"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/email"
	"vraee_backend/internal/models"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/services"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv - сервисы поверх отдельной in-memory sqlite на каждый тест.
// cache=shared нужен, чтобы пул соединений gorm видел одну и ту же БД.
type testEnv struct {
	db       *gorm.DB
	users    services.UserService
	auth     services.AuthService
	projects services.ProjectService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Project{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	tokens := auth.NewTokenManager("test_secret_key", time.Hour)

	userService := services.NewUserService(userRepo)
	return &testEnv{
		db:       db,
		users:    userService,
		auth:     services.NewAuthService(userService, tokens, email.NoopNotifier{}),
		projects: services.NewProjectService(projectRepo, userRepo),
	}
}

// createUser - быстрый способ получить учетку в нужном статусе
func (e *testEnv) createUser(t *testing.T, emailAddr, password string, role models.UserRole, status models.UserStatus) *models.User {
	t.Helper()
	user, err := e.users.Create(services.CreateUserParams{
		Email:    emailAddr,
		Password: password,
		Role:     role,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("failed to create test user %s: %v", emailAddr, err)
	}
	return user
}
