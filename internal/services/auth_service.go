package services

import (
	"strings"

	"vraee_backend/internal/auth"
	"vraee_backend/internal/email"
	"vraee_backend/internal/logger"
	"vraee_backend/internal/models"
	"vraee_backend/internal/oauth"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/services/dto"
	"vraee_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	ValidateUser(email, password string) (*models.User, error)
	Login(user *models.User) (string, error)
	Register(req *dto.RegisterRequest) (*models.User, error)
	HandleOAuthLogin(profile *oauth.Profile) (*models.User, error)
}

type AuthServiceImpl struct {
	userService UserService
	tokens      *auth.TokenManager
	notifier    email.Notifier
}

func NewAuthService(userService UserService, tokens *auth.TokenManager, notifier email.Notifier) AuthService {
	return &AuthServiceImpl{
		userService: userService,
		tokens:      tokens,
		notifier:    notifier,
	}
}

// ValidateUser проверяет учетные данные и состояние аккаунта.
// Порядок проверок фиксирован: существование -> PENDING -> блокировка
// -> пароль. PENDING и блокировка сообщаются до проверки пароля.
func (s *AuthServiceImpl) ValidateUser(emailAddr, password string) (*models.User, error) {
	user, err := s.userService.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Status == models.UserStatusPending {
		return nil, apperrors.ErrUserPending
	}

	if user.IsBlocked || user.Status == models.UserStatusBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login выпускает подписанный токен с id, email и ролью пользователя.
func (s *AuthServiceImpl) Login(user *models.User) (string, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

// Register создает пользователя в статусе PENDING. Токен не выдается:
// вход возможен только после одобрения администратором.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if len(strings.TrimSpace(req.Password)) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	// Предварительная проверка дубликата; гонку закрывает
	// уникальный индекс в репозитории.
	if _, err := s.userService.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if err := validateRegisterEnums(req); err != nil {
		return nil, err
	}

	user, err := s.userService.Create(CreateUserParams{
		Email:           req.Email,
		Password:        req.Password,
		Role:            models.UserRoleUser,
		Status:          models.UserStatusPending,
		FullName:        req.FullName,
		CompanyName:     req.CompanyName,
		Website:         req.Website,
		ClientType:      models.ClientType(req.ClientType),
		PrimaryService:  toEnumSlice[models.PrimaryService](req.PrimaryService),
		ProjectVolume:   models.ProjectVolume(req.ProjectVolume),
		CadSoftware:     models.CadSoftware(req.CadSoftware),
		RequiredOutputs: toEnumSlice[models.RequiredOutput](req.RequiredOutputs),
		ReferralSource:  req.ReferralSource,
	})
	if err != nil {
		return nil, err
	}

	// Уведомление админа best-effort: сбой SMTP не должен ломать
	// регистрацию.
	if err := s.notifier.NotifyNewRegistration(user); err != nil {
		logger.Warn("failed to notify admin about new registration", "error", err, "email", user.Email)
	}

	return user, nil
}

// HandleOAuthLogin связывает OAuth-профиль с локальной записью.
// Повторные вызовы с одним email идемпотентны. Новые OAuth-аккаунты
// создаются сразу активными со случайным непригодным паролем.
func (s *AuthServiceImpl) HandleOAuthLogin(profile *oauth.Profile) (*models.User, error) {
	user, err := s.userService.FindByEmail(profile.Email)
	if err == nil {
		return user, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	fullName := strings.TrimSpace(profile.FirstName + " " + profile.LastName)

	user, err = s.userService.Create(CreateUserParams{
		Email:    profile.Email,
		Password: uuid.NewString(),
		Role:     models.UserRoleUser,
		Status:   models.UserStatusActive,
		FullName: fullName,
	})
	if err != nil {
		// Параллельный callback мог создать запись первым.
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return s.userService.FindByEmail(profile.Email)
		}
		return nil, err
	}

	logger.Info("created user from oauth profile",
		"email", user.Email, "provider", profile.Provider)

	return user, nil
}

// validateRegisterEnums проверяет enum-поля формы и называет клиенту
// конкретное неверное значение.
func validateRegisterEnums(req *dto.RegisterRequest) error {
	if req.ClientType != "" && !models.IsValidClientType(models.ClientType(req.ClientType)) {
		return apperrors.ErrInvalidEnumValue("clientType", req.ClientType)
	}

	var invalidServices []string
	for _, svc := range req.PrimaryService {
		if !models.IsValidPrimaryService(models.PrimaryService(svc)) {
			invalidServices = append(invalidServices, svc)
		}
	}
	if len(invalidServices) > 0 {
		return apperrors.ErrInvalidEnumValue("primaryService values", invalidServices...)
	}

	if req.ProjectVolume != "" && !models.IsValidProjectVolume(models.ProjectVolume(req.ProjectVolume)) {
		return apperrors.ErrInvalidEnumValue("projectVolume", req.ProjectVolume)
	}

	if req.CadSoftware != "" && !models.IsValidCadSoftware(models.CadSoftware(req.CadSoftware)) {
		return apperrors.ErrInvalidEnumValue("cadSoftware", req.CadSoftware)
	}

	var invalidOutputs []string
	for _, out := range req.RequiredOutputs {
		if !models.IsValidRequiredOutput(models.RequiredOutput(out)) {
			invalidOutputs = append(invalidOutputs, out)
		}
	}
	if len(invalidOutputs) > 0 {
		return apperrors.ErrInvalidEnumValue("requiredOutputs values", invalidOutputs...)
	}

	return nil
}

func toEnumSlice[T ~string](values []string) []T {
	if values == nil {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}
