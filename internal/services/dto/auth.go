package dto

import "vraee_backend/internal/models"

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest - форма регистрации. Анкетные поля опциональны,
// enum-значения дополнительно проверяются сервисом, чтобы назвать
// клиенту конкретное неверное значение.
type RegisterRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	FullName        string   `json:"fullName,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	Website         string   `json:"website,omitempty"`
	ClientType      string   `json:"clientType,omitempty"`
	PrimaryService  []string `json:"primaryService,omitempty"`
	ProjectVolume   string   `json:"projectVolume,omitempty"`
	CadSoftware     string   `json:"cadSoftware,omitempty"`
	RequiredOutputs []string `json:"requiredOutputs,omitempty"`
	ReferralSource  string   `json:"referralSource,omitempty"`
}

// AuthResponse - конверт ответа логина/регистрации.
// Формат зафиксирован фронтендом: status / message / role.
type AuthResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Role    models.UserRole `json:"role,omitempty"`
}
