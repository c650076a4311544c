package handlers

import (
	"net/http"
	"strconv"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/middleware"
	"vraee_backend/internal/models"
	"vraee_backend/internal/services"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
	tokens         *auth.TokenManager
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService, tokens *auth.TokenManager) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
		tokens:         tokens,
	}
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	project := rg.Group("/project")
	project.Use(middleware.AuthMiddleware(h.tokens))
	{
		project.POST("/create", h.CreateProject)
		project.GET("/my", h.MyProjects)

		// Статусы и прогресс двигают сотрудники студии
		project.GET("/list",
			middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator),
			h.ListProjects)
		project.PATCH("/:id",
			middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator),
			h.UpdateProject)
	}
}

// CreateProject - заявка клиента на расчет стоимости.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) MyProjects(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	projects, err := h.projectService.FindByUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.FindAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid project id"))
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, svcErr := h.projectService.Update(uint(id), &req)
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, project)
}
