package services

import "vraee_backend/internal/email"

// ServiceContainer группирует сервисы для передачи в хендлеры.
type ServiceContainer struct {
	UserService    UserService
	AuthService    AuthService
	ProjectService ProjectService
	EmailService   email.Notifier
}
