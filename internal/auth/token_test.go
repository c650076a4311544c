package auth_test

import (
	"testing"
	"time"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	u := &models.User{
		Email: "client@example.com",
		Role:  models.UserRoleUser,
	}
	u.ID = 42
	return u
}

// TestToken_RoundTrip - проверяет, что claims переживают выпуск и разбор
func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test_secret_key", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "client@example.com", claims.Email)
	assert.Equal(t, models.UserRoleUser, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, uint(42), claims.UserID())
}

// TestToken_WrongSecret - токен с чужой подписью отклоняется
func TestToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("secret_one", time.Hour)
	other := auth.NewTokenManager("secret_two", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

// TestToken_Expired - просроченный токен отклоняется
func TestToken_Expired(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test_secret_key", -time.Minute)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

// TestToken_Garbage - произвольная строка не проходит разбор
func TestToken_Garbage(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test_secret_key", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.Error(t, err)
}

// TestPassword_HashAndCheck - bcrypt-хеш совпадает только с исходным паролем
func TestPassword_HashAndCheck(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, auth.CheckPasswordHash("super_password123", hash))
	assert.False(t, auth.CheckPasswordHash("wrong_password", hash))
}
