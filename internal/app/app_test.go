package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vraee_backend/database"
	"vraee_backend/internal/app"
	"vraee_backend/internal/config"
	"vraee_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestApp поднимает приложение поверх отдельной in-memory sqlite
// с сидированными учетками (test@example.com / admin@vraee.com).
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Type = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.JWT.Secret = "my_super_secret_key_for_tests_12345"
	cfg.JWT.TTLMinutes = 60
	cfg.Frontend.URL = "http://localhost:3001"

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db))

	return app.SetupRouter(cfg, db), db
}

// sendRequest выполняет запрос к роутеру. Непустой token уходит кукой.
func sendRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginAs логинится и возвращает значение auth-куки
func loginAs(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec := sendRequest(t, router, "POST", "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("login response has no token cookie")
	return ""
}

// TestLogin_SetsCookieAndEnvelope - логин отдает конверт status/message/role
// и httpOnly-куку
func TestLogin_SetsCookieAndEnvelope(t *testing.T) {
	router, _ := setupTestApp(t)

	rec := sendRequest(t, router, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "admin@vraee.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)

	var authCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" {
			authCookie = cookie
		}
	}
	require.NotNil(t, authCookie)
	assert.NotEmpty(t, authCookie.Value)
	assert.True(t, authCookie.HttpOnly)
}

// TestLogin_WrongPassword
func TestLogin_WrongPassword(t *testing.T) {
	router, _ := setupTestApp(t)

	rec := sendRequest(t, router, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "admin@vraee.com",
		"password": "wrong_password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

// TestRegisterFlow - регистрация создает PENDING-аккаунт, логин до
// одобрения проваливается, после одобрения админом проходит
func TestRegisterFlow(t *testing.T) {
	router, db := setupTestApp(t)

	regRec := sendRequest(t, router, "POST", "/auth/register", "", map[string]interface{}{
		"email":    "newclient@test.com",
		"password": "super_password123",
		"fullName": "New Client",
	})
	require.Equal(t, http.StatusOK, regRec.Code)
	assert.Contains(t, regRec.Body.String(), "awaiting approval")

	var user models.User
	require.NoError(t, db.Where("email = ?", "newclient@test.com").First(&user).Error)
	assert.Equal(t, models.UserStatusPending, user.Status)

	// Логин до одобрения
	pendRec := sendRequest(t, router, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "newclient@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, pendRec.Code)
	assert.Contains(t, pendRec.Body.String(), "awaiting approval")

	// Одобрение админом
	adminToken := loginAs(t, router, "admin@vraee.com", "admin123")
	approveRec := sendRequest(t, router, "PATCH",
		fmt.Sprintf("/user/%d/status", user.ID), adminToken,
		map[string]interface{}{"status": "ACTIVE"})
	require.Equal(t, http.StatusOK, approveRec.Code)

	// Теперь вход проходит
	okRec := sendRequest(t, router, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "newclient@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, okRec.Code)
}

// TestRegister_DuplicateEmailReturns400 - контракт фронтенда: любая
// ошибка регистрации отдается как 400 с текстом
func TestRegister_DuplicateEmailReturns400(t *testing.T) {
	router, _ := setupTestApp(t)

	body := map[string]interface{}{
		"email":    "dup@test.com",
		"password": "super_password123",
	}
	first := sendRequest(t, router, "POST", "/auth/register", "", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := sendRequest(t, router, "POST", "/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "already exists")
}

// TestUserList_RequiresAdmin - доступ к списку пользователей по ролям
func TestUserList_RequiresAdmin(t *testing.T) {
	router, _ := setupTestApp(t)

	noAuth := sendRequest(t, router, "GET", "/user/list", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noAuth.Code)

	userToken := loginAs(t, router, "test@example.com", "password123")
	asUser := sendRequest(t, router, "GET", "/user/list", userToken, nil)
	assert.Equal(t, http.StatusForbidden, asUser.Code)

	adminToken := loginAs(t, router, "admin@vraee.com", "admin123")
	asAdmin := sendRequest(t, router, "GET", "/user/list", adminToken, nil)
	require.Equal(t, http.StatusOK, asAdmin.Code)
	assert.Contains(t, asAdmin.Body.String(), "admin@vraee.com")
	assert.Contains(t, asAdmin.Body.String(), "test@example.com")
	// Хеши паролей наружу не уходят
	assert.NotContains(t, asAdmin.Body.String(), "passwordHash")
}

// TestUserMe - текущий пользователь по куке
func TestUserMe(t *testing.T) {
	router, _ := setupTestApp(t)

	token := loginAs(t, router, "test@example.com", "password123")
	rec := sendRequest(t, router, "GET", "/user/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
}

// TestProfileOnboarding - PATCH /user/profile завершает онбординг
func TestProfileOnboarding(t *testing.T) {
	router, _ := setupTestApp(t)

	token := loginAs(t, router, "test@example.com", "password123")
	rec := sendRequest(t, router, "PATCH", "/user/profile", token, map[string]interface{}{
		"fullName":       "Test User",
		"clientType":     "JEWELRY_ECOMMERCE",
		"primaryService": []string{"CAD_MODELING", "PHOTOREALISTIC_RENDERING"},
		"projectVolume":  "ONE_TO_FIVE_MONTHLY",
		"cadSoftware":    "RHINO",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isProfileComplete":true`)
}

// TestProfileOnboarding_InvalidEnum - валидатор отклоняет неизвестное значение
func TestProfileOnboarding_InvalidEnum(t *testing.T) {
	router, _ := setupTestApp(t)

	token := loginAs(t, router, "test@example.com", "password123")
	rec := sendRequest(t, router, "PATCH", "/user/profile", token, map[string]interface{}{
		"clientType": "SPACE_AGENCY",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestProjectFlow - клиент создает заявку, менеджер двигает статус
func TestProjectFlow(t *testing.T) {
	router, _ := setupTestApp(t)

	userToken := loginAs(t, router, "test@example.com", "password123")

	createRec := sendRequest(t, router, "POST", "/project/create", userToken, map[string]interface{}{
		"serviceType": "3D CAD Modeling",
		"projectName": "Gold ring with emerald",
		"description": "Ring for spring collection",
	})
	require.Equal(t, http.StatusCreated, createRec.Code, createRec.Body.String())
	assert.Contains(t, createRec.Body.String(), "QUOTE_PENDING")

	var created models.Project
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &created))

	myRec := sendRequest(t, router, "GET", "/project/my", userToken, nil)
	require.Equal(t, http.StatusOK, myRec.Code)
	assert.Contains(t, myRec.Body.String(), "Gold ring with emerald")

	// Клиент не может править проект
	patchPath := fmt.Sprintf("/project/%d", created.ID)
	denied := sendRequest(t, router, "PATCH", patchPath, userToken, map[string]interface{}{
		"status": "CAD_MODEL_CREATION",
	})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	// Админ может
	adminToken := loginAs(t, router, "admin@vraee.com", "admin123")
	updated := sendRequest(t, router, "PATCH", patchPath, adminToken, map[string]interface{}{
		"status":   "CAD_MODEL_CREATION",
		"progress": 35,
	})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())
	assert.Contains(t, updated.Body.String(), "CAD_MODEL_CREATION")

	listRec := sendRequest(t, router, "GET", "/project/list", adminToken, nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), "Gold ring with emerald")
}

// TestProjectCreate_RequiresAuth
func TestProjectCreate_RequiresAuth(t *testing.T) {
	router, _ := setupTestApp(t)

	rec := sendRequest(t, router, "POST", "/project/create", "", map[string]interface{}{
		"serviceType": "3D CAD Modeling",
		"projectName": "Ring",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestLogout_ClearsCookie
func TestLogout_ClearsCookie(t *testing.T) {
	router, _ := setupTestApp(t)

	rec := sendRequest(t, router, "POST", "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

// TestUserGet_MissingUserReturnsNull - контракт фронтенда: отсутствие
// записи не считается ошибкой
func TestUserGet_MissingUserReturnsNull(t *testing.T) {
	router, _ := setupTestApp(t)

	rec := sendRequest(t, router, "POST", "/user/get", "", map[string]interface{}{
		"email": "nobody@test.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}
