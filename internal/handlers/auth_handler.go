package handlers

import (
	"net/http"

	"vraee_backend/internal/config"
	"vraee_backend/internal/logger"
	"vraee_backend/internal/oauth"
	"vraee_backend/internal/services"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
	providers   map[string]oauth.Provider
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config, providers map[string]oauth.Provider) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
		providers:   providers,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// OAuth-маршруты появляются только у настроенных провайдеров.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
	}

	for name := range h.providers {
		auth.GET("/"+name, h.oauthRedirect(name))
		auth.GET("/"+name+"/callback", h.oauthCallback(name))
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.ValidateUser(req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	token, err := h.authService.Login(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookie(c, token)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Status:  "success",
		Message: "Login successful",
		Role:    user.Role,
	})
}

// Register создает PENDING-аккаунт. Куки не выставляется: до
// одобрения админом вход невозможен. Любая ошибка сервиса отдается
// как 400 с текстом - формат, на который рассчитана форма фронтенда.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		message := "Registration failed"
		if appErr, ok := apperrors.AsAppError(err); ok {
			message = appErr.Message
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError(message))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Status:  "success",
		Message: "Registration successful. Your account is awaiting approval from the Vraee admin team.",
		Role:    user.Role,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Status:  "success",
		Message: "Logged out",
	})
}

// oauthRedirect отправляет пользователя на страницу согласия
// провайдера. State сохраняется в короткоживущей куке.
func (h *AuthHandler) oauthRedirect(name string) gin.HandlerFunc {
	provider := h.providers[name]
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(oauthStateCookie, state, 300, "/", "", h.cfg.IsProduction(), true)
		c.Redirect(http.StatusTemporaryRedirect, provider.AuthCodeURL(state))
	}
}

// oauthCallback завершает OAuth-обмен: сверяет state, получает
// нормализованный профиль, связывает его с локальной записью и
// редиректит на страницу профиля фронтенда с выставленной кукой.
func (h *AuthHandler) oauthCallback(name string) gin.HandlerFunc {
	provider := h.providers[name]
	return func(c *gin.Context) {
		expectedState, err := c.Cookie(oauthStateCookie)
		if err != nil || expectedState == "" || c.Query("state") != expectedState {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid OAuth state"))
			return
		}
		c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction(), true)

		code := c.Query("code")
		if code == "" {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Missing authorization code"))
			return
		}

		profile, err := provider.Exchange(c.Request.Context(), code)
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "OAuth exchange failed", err, "provider", name)
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("OAuth authentication failed"))
			return
		}

		user, err := h.authService.HandleOAuthLogin(profile)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		token, err := h.authService.Login(user)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		h.setAuthCookie(c, token)
		c.Redirect(http.StatusFound, h.cfg.Frontend.URL+"/profile")
	}
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		"token",
		token,
		h.cfg.JWT.TTLMinutes*60,
		"/",
		"",
		h.cfg.IsProduction(), // Secure только по HTTPS
		true,                 // httpOnly
	)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", h.cfg.IsProduction(), true)
}
