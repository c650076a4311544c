package services

import (
	"vraee_backend/internal/auth"
	"vraee_backend/internal/models"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/services/dto"

	"gorm.io/datatypes"
	"vraee_backend/pkg/apperrors"
)

// CreateUserParams - параметры создания учетной записи.
// Уникальность email на этом уровне не проверяется: вызывающий
// обязан сделать предварительный поиск, индекс БД страхует гонку.
type CreateUserParams struct {
	Email    string
	Password string
	Role     models.UserRole
	Status   models.UserStatus

	FullName        string
	CompanyName     string
	Website         string
	ClientType      models.ClientType
	PrimaryService  []models.PrimaryService
	ProjectVolume   models.ProjectVolume
	CadSoftware     models.CadSoftware
	RequiredOutputs []models.RequiredOutput
	ReferralSource  string
}

type UserService interface {
	Create(params CreateUserParams) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	FindAll() ([]models.User, error)
	UpdateStatus(id uint, status models.UserStatus) (*models.User, error)
	UpdateProfile(id uint, req *dto.UpdateProfileRequest) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Create сохраняет нового пользователя. Пароль хешируется здесь,
// сырой пароль в БД не попадает.
func (s *UserServiceImpl) Create(params CreateUserParams) (*models.User, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := params.Role
	if role == "" {
		role = models.UserRoleUser
	}
	status := params.Status
	if status == "" {
		status = models.UserStatusPending
	}

	user := &models.User{
		Email:           params.Email,
		PasswordHash:    hash,
		Role:            role,
		Status:          status,
		IsBlocked:       status == models.UserStatusBlocked,
		FullName:        params.FullName,
		CompanyName:     params.CompanyName,
		Website:         params.Website,
		ClientType:      params.ClientType,
		PrimaryService:  datatypes.JSONSlice[models.PrimaryService](params.PrimaryService),
		ProjectVolume:   params.ProjectVolume,
		CadSoftware:     params.CadSoftware,
		RequiredOutputs: datatypes.JSONSlice[models.RequiredOutput](params.RequiredOutputs),
		ReferralSource:  params.ReferralSource,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *UserServiceImpl) FindByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *UserServiceImpl) FindByID(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// FindAll возвращает всех пользователей. Пагинации нет намеренно:
// админка студии оперирует десятками клиентов.
func (s *UserServiceImpl) FindAll() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// UpdateStatus переводит пользователя в указанный статус.
// Проверки допустимости перехода нет: админ может выставить любой
// статус из любого предыдущего.
func (s *UserServiceImpl) UpdateStatus(id uint, status models.UserStatus) (*models.User, error) {
	if !models.IsValidUserStatus(status) {
		return nil, apperrors.ErrInvalidStatusValue("user", "Unknown user status: "+string(status))
	}

	if err := s.userRepo.UpdateStatus(id, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.userRepo.FindByID(id)
}

// UpdateProfile - шаг онбординга: вливает переданные поля в запись
// и пересчитывает флаг isProfileComplete.
func (s *UserServiceImpl) UpdateProfile(id uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}

	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.ClientType != nil {
		fields["client_type"] = *req.ClientType
	}
	if req.PrimaryService != nil {
		fields["primary_service"] = toJSONSlice[models.PrimaryService](req.PrimaryService)
	}
	if req.ProjectVolume != nil {
		fields["project_volume"] = *req.ProjectVolume
	}
	if req.CadSoftware != nil {
		fields["cad_software"] = *req.CadSoftware
	}
	if req.RequiredOutputs != nil {
		fields["required_outputs"] = toJSONSlice[models.RequiredOutput](req.RequiredOutputs)
	}
	if req.ReferralSource != nil {
		fields["referral_source"] = *req.ReferralSource
	}

	if err := s.userRepo.UpdateFields(id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if complete := profileComplete(user); complete != user.IsProfileComplete {
		if err := s.userRepo.UpdateFields(id, map[string]interface{}{"is_profile_complete": complete}); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.IsProfileComplete = complete
	}

	return user, nil
}

// profileComplete: онбординг считается пройденным, когда заполнены
// имя, тип клиента, хотя бы одна услуга и ожидаемый объем заказов.
func profileComplete(u *models.User) bool {
	return u.FullName != "" &&
		u.ClientType != "" &&
		len(u.PrimaryService) > 0 &&
		u.ProjectVolume != ""
}

func toJSONSlice[T ~string](values []string) datatypes.JSONSlice[T] {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return datatypes.JSONSlice[T](out)
}
