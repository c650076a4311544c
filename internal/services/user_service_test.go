package services_test

import (
	"testing"

	"vraee_backend/internal/models"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserUpdateStatus - смена статуса синхронизирует флаг блокировки
func TestUserUpdateStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusPending)

	blocked, err := env.users.UpdateStatus(user.ID, models.UserStatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBlocked, blocked.Status)
	assert.True(t, blocked.IsBlocked)

	active, err := env.users.UpdateStatus(user.ID, models.UserStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, active.Status)
	assert.False(t, active.IsBlocked)
}

// TestUserUpdateStatus_Invalid - статус вне перечисления отклоняется
func TestUserUpdateStatus_Invalid(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusPending)

	_, err := env.users.UpdateStatus(user.ID, models.UserStatus("SLEEPING"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "SLEEPING")
}

// TestUserUpdateStatus_NotFound
func TestUserUpdateStatus_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.users.UpdateStatus(999, models.UserStatusActive)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUserNotFound))
}

// TestUpdateProfile_CompletesOnboarding - флаг isProfileComplete
// выставляется, когда заполнены имя, тип клиента, услуги и объем
func TestUpdateProfile_CompletesOnboarding(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)
	assert.False(t, user.IsProfileComplete)

	// Частичное заполнение онбординг не завершает
	partial, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName:   strPtr("Test Client"),
		ClientType: strPtr("DESIGNER_ETSY"),
	})
	require.NoError(t, err)
	assert.False(t, partial.IsProfileComplete)

	complete, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		PrimaryService: []string{"PHOTOREALISTIC_RENDERING"},
		ProjectVolume:  strPtr("ONE_OFF"),
	})
	require.NoError(t, err)
	assert.True(t, complete.IsProfileComplete)
	assert.Equal(t, "Test Client", complete.FullName)
	assert.Equal(t, models.ClientTypeDesignerEtsy, complete.ClientType)
	require.Len(t, complete.PrimaryService, 1)
	assert.Equal(t, models.PrimaryServiceRendering, complete.PrimaryService[0])
}

// TestUpdateProfile_EmptyValueResetsFlag - обнуление обязательного поля
// снимает флаг завершенности
func TestUpdateProfile_EmptyValueResetsFlag(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "client@test.com", "super_password123",
		models.UserRoleUser, models.UserStatusActive)

	_, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName:       strPtr("Test Client"),
		ClientType:     strPtr("MARKETING_AGENCY"),
		PrimaryService: []string{"CONSULTING"},
		ProjectVolume:  strPtr("ONGOING_RETAINER"),
	})
	require.NoError(t, err)

	reset, err := env.users.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName: strPtr(""),
	})
	require.NoError(t, err)
	assert.False(t, reset.IsProfileComplete)
}

// TestUserFindAll - список включает всех пользователей по порядку id
func TestUserFindAll(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser(t, "a@test.com", "super_password123", models.UserRoleUser, models.UserStatusActive)
	env.createUser(t, "b@test.com", "super_password123", models.UserRoleAdmin, models.UserStatusActive)

	users, err := env.users.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@test.com", users[0].Email)
	assert.Equal(t, "b@test.com", users[1].Email)
}
