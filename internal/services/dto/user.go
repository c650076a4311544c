package dto

// CreateUserRequest - прямое создание пользователя (служебный эндпоинт).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

// GetUserRequest - поиск по email либо id.
type GetUserRequest struct {
	Email string `json:"email,omitempty"`
	ID    uint   `json:"id,omitempty"`
}

// UpdateStatusRequest - смена статуса администратором.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,is-user-status"`
}

// UpdateProfileRequest - шаг онбординга: частичное обновление анкеты.
// Указатели отличают "не передано" от пустого значения.
type UpdateProfileRequest struct {
	FullName        *string  `json:"fullName,omitempty"`
	CompanyName     *string  `json:"companyName,omitempty"`
	Website         *string  `json:"website,omitempty"`
	ClientType      *string  `json:"clientType,omitempty" validate:"omitempty,is-client-type"`
	PrimaryService  []string `json:"primaryService,omitempty" validate:"omitempty,dive,is-primary-service"`
	ProjectVolume   *string  `json:"projectVolume,omitempty" validate:"omitempty,is-project-volume"`
	CadSoftware     *string  `json:"cadSoftware,omitempty" validate:"omitempty,is-cad-software"`
	RequiredOutputs []string `json:"requiredOutputs,omitempty" validate:"omitempty,dive,is-required-output"`
	ReferralSource  *string  `json:"referralSource,omitempty"`
}
