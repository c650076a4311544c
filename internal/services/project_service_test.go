package services_test

import (
	"testing"
	"time"

	"vraee_backend/internal/models"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// TestProjectCreate_Success - новая заявка стартует с QUOTE_PENDING
func TestProjectCreate_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)

	project, err := env.projects.Create(user.ID, &dto.CreateProjectRequest{
		ServiceType:   "3D CAD Modeling",
		ServiceDetail: "Modeling from Scratch (Sketch/Reference)",
		ProjectName:   "Gold ring with emerald",
		Description:   "Ring for spring collection",
		Files:         []string{"sketch.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusQuotePending, project.Status)
	assert.Equal(t, user.ID, project.UserID)
	assert.Equal(t, float64(0), project.Progress)
	assert.NotZero(t, project.ID)
}

// TestProjectCreate_UnknownUser - заявка без существующего владельца
func TestProjectCreate_UnknownUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.projects.Create(999, &dto.CreateProjectRequest{
		ServiceType: "3D CAD Modeling",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUserNotFound))
}

// TestProjectCreate_InvalidServiceType - неверный тип услуги называется в ошибке
func TestProjectCreate_InvalidServiceType(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)

	_, err := env.projects.Create(user.ID, &dto.CreateProjectRequest{
		ServiceType: "Blacksmithing",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "serviceType")
	assert.Contains(t, appErr.Message, "Blacksmithing")
}

// TestProjectFindByUser - клиент видит только свои проекты
func TestProjectFindByUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)
	bob := env.createUser(t, "bob@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)

	for _, owner := range []uint{alice.ID, alice.ID, bob.ID} {
		_, err := env.projects.Create(owner, &dto.CreateProjectRequest{
			ServiceType: "3D Rendering & Animation",
		})
		require.NoError(t, err)
	}

	aliceProjects, err := env.projects.FindByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceProjects, 2)

	all, err := env.projects.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// TestProjectUpdate_StatusAndManager - менеджер двигает статус и поля
func TestProjectUpdate_StatusAndManager(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)
	project, err := env.projects.Create(user.ID, &dto.CreateProjectRequest{
		ServiceType: "3D CAD Modeling",
	})
	require.NoError(t, err)

	delivery := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	updated, err := env.projects.Update(project.ID, &dto.UpdateProjectRequest{
		Status:            strPtr("CAD_MODEL_CREATION"),
		Progress:          floatPtr(35),
		ProjectManager:    strPtr("Anna"),
		EstimatedDelivery: &delivery,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusCadModelCreation, updated.Status)
	assert.Equal(t, float64(35), updated.Progress)
	assert.Equal(t, "Anna", updated.ProjectManager)
	require.NotNil(t, updated.EstimatedDelivery)
	assert.True(t, delivery.Equal(*updated.EstimatedDelivery))
}

// TestProjectUpdate_ProgressClamped - прогресс обрезается в 0..100
func TestProjectUpdate_ProgressClamped(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)
	project, err := env.projects.Create(user.ID, &dto.CreateProjectRequest{
		ServiceType: "3D CAD Modeling",
	})
	require.NoError(t, err)

	updated, err := env.projects.Update(project.ID, &dto.UpdateProjectRequest{
		Progress: floatPtr(150),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(100), updated.Progress)

	updated, err = env.projects.Update(project.ID, &dto.UpdateProjectRequest{
		Progress: floatPtr(-10),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), updated.Progress)
}

// TestProjectUpdate_InvalidStatus - статус вне перечисления отклоняется
func TestProjectUpdate_InvalidStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)
	project, err := env.projects.Create(user.ID, &dto.CreateProjectRequest{
		ServiceType: "3D CAD Modeling",
	})
	require.NoError(t, err)

	_, err = env.projects.Update(project.ID, &dto.UpdateProjectRequest{
		Status: strPtr("TELEPORTED"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "TELEPORTED")
}

// TestProjectUpdate_NotFound - правка несуществующего проекта
func TestProjectUpdate_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.projects.Update(999, &dto.UpdateProjectRequest{
		Progress: floatPtr(10),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProjectNotFound))
}
