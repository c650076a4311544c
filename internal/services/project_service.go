package services

import (
	"vraee_backend/internal/models"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProjectService interface {
	Create(userID uint, req *dto.CreateProjectRequest) (*models.Project, error)
	FindByUser(userID uint) ([]models.Project, error)
	FindAll() ([]models.Project, error)
	Update(id uint, req *dto.UpdateProjectRequest) (*models.Project, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create регистрирует заявку клиента. Новый проект всегда стартует
// со статуса QUOTE_PENDING.
func (s *ProjectServiceImpl) Create(userID uint, req *dto.CreateProjectRequest) (*models.Project, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	serviceType := models.ServiceType(req.ServiceType)
	if !models.IsValidServiceType(serviceType) {
		return nil, apperrors.ErrInvalidEnumValue("serviceType", req.ServiceType)
	}

	serviceDetail := models.ServiceDetail(req.ServiceDetail)
	if req.ServiceDetail != "" && !models.IsValidServiceDetail(serviceDetail) {
		return nil, apperrors.ErrInvalidEnumValue("serviceDetail", req.ServiceDetail)
	}

	project := &models.Project{
		ServiceType:   serviceType,
		ServiceDetail: serviceDetail,
		ProjectName:   req.ProjectName,
		Description:   req.Description,
		Files:         datatypes.JSONSlice[string](req.Files),
		Status:        models.ProjectStatusQuotePending,
		UserID:        userID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return project, nil
}

func (s *ProjectServiceImpl) FindByUser(userID uint) ([]models.Project, error) {
	return s.projectRepo.FindByUser(userID)
}

func (s *ProjectServiceImpl) FindAll() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// Update - правки менеджера проекта. Статус проверяется на
// принадлежность перечислению, но переходы не ограничены; прогресс
// обрезается в диапазон 0..100. Монотонность прогресса не
// гарантируется.
func (s *ProjectServiceImpl) Update(id uint, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !models.IsValidProjectStatus(status) {
			return nil, apperrors.ErrInvalidEnumValue("status", *req.Status)
		}
		project.Status = status
	}

	if req.Progress != nil {
		progress := *req.Progress
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		project.Progress = progress
	}

	if req.ProjectManager != nil {
		project.ProjectManager = *req.ProjectManager
	}
	if req.EstimatedDelivery != nil {
		project.EstimatedDelivery = req.EstimatedDelivery
	}
	if req.Files != nil {
		project.Files = datatypes.JSONSlice[string](req.Files)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.projectRepo.Save(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return project, nil
}
