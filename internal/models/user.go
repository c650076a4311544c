package models

import "gorm.io/datatypes"

// User - учетная запись клиента или сотрудника студии.
// Анкетные поля (clientType, primaryService и т.д.) заполняются
// при регистрации либо на шаге онбординга и могут быть пустыми.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	IsBlocked    bool       `gorm:"default:false" json:"isBlocked"`

	FullName        string                               `json:"fullName,omitempty"`
	CompanyName     string                               `json:"companyName,omitempty"`
	Website         string                               `json:"website,omitempty"`
	ClientType      ClientType                           `gorm:"type:varchar(40)" json:"clientType,omitempty"`
	PrimaryService  datatypes.JSONSlice[PrimaryService]  `json:"primaryService,omitempty"`
	ProjectVolume   ProjectVolume                        `gorm:"type:varchar(40)" json:"projectVolume,omitempty"`
	CadSoftware     CadSoftware                          `gorm:"type:varchar(40)" json:"cadSoftware,omitempty"`
	RequiredOutputs datatypes.JSONSlice[RequiredOutput]  `json:"requiredOutputs,omitempty"`
	ReferralSource  string                               `json:"referralSource,omitempty"`

	IsProfileComplete bool `gorm:"default:false" json:"isProfileComplete"`

	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}
