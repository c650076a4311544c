package email

import (
	"fmt"

	"vraee_backend/internal/config"
	"vraee_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// Notifier уведомляет администрацию о событиях, требующих ручного
// действия. Сейчас это единственное событие: новая заявка на
// регистрацию в статусе PENDING.
type Notifier interface {
	NotifyNewRegistration(user *models.User) error
}

// SMTPNotifier отправляет письма через SMTP.
type SMTPNotifier struct {
	dialer     *gomail.Dialer
	fromEmail  string
	adminEmail string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
		),
		fromEmail:  cfg.Email.FromEmail,
		adminEmail: cfg.Email.AdminEmail,
	}
}

func (n *SMTPNotifier) NotifyNewRegistration(user *models.User) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.fromEmail)
	m.SetHeader("To", n.adminEmail)
	m.SetHeader("Subject", "New user registration pending approval")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>New registration awaiting approval.</p>"+
			"<p>Email: %s<br>Name: %s<br>Company: %s</p>",
		user.Email, user.FullName, user.CompanyName,
	))

	return n.dialer.DialAndSend(m)
}

// NoopNotifier используется, когда SMTP не настроен (локальная
// разработка, тесты).
type NoopNotifier struct{}

func (NoopNotifier) NotifyNewRegistration(*models.User) error { return nil }
