package handlers

import (
	"net/http"
	"strconv"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/middleware"
	"vraee_backend/internal/models"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/services"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	tokens      *auth.TokenManager
}

func NewUserHandler(base *BaseHandler, userService services.UserService, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		tokens:      tokens,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/create", h.CreateUser)
		user.POST("/get", h.GetUser)

		user.GET("/list",
			middleware.AuthMiddleware(h.tokens),
			middleware.RequireRoles(models.UserRoleAdmin),
			h.ListUsers)

		user.PATCH("/:id/status",
			middleware.AuthMiddleware(h.tokens),
			middleware.RequireRoles(models.UserRoleAdmin),
			h.UpdateUserStatus)

		user.GET("/me",
			middleware.AuthMiddleware(h.tokens),
			h.GetCurrentUser)

		user.PATCH("/profile",
			middleware.AuthMiddleware(h.tokens),
			h.UpdateProfile)
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(services.CreateUserParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.UserRole(req.Role),
		Status:   models.UserStatusActive,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser ищет по email либо id. Отсутствие записи - не ошибка,
// в ответ уходит null.
func (h *UserHandler) GetUser(c *gin.Context) {
	var req dto.GetUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var (
		user *models.User
		err  error
	)
	switch {
	case req.Email != "":
		user, err = h.userService.FindByEmail(req.Email)
	case req.ID != 0:
		user, err = h.userService.FindByID(req.ID)
	default:
		c.JSON(http.StatusOK, nil)
		return
	}

	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.FindAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid user id"))
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, svcErr := h.userService.UpdateStatus(uint(id), models.UserStatus(req.Status))
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	user, err := h.userService.FindByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile - шаг онбординга текущего пользователя.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
