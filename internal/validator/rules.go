package validator

import (
	"log"

	"vraee_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила-перечисления.
// Пустое значение пропускается: обязательность поля задается тегом required.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - ошибка времени запуска приложения.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", enumRule(models.IsValidUserRole))
	mustRegister("is-user-status", enumRule(models.IsValidUserStatus))
	mustRegister("is-client-type", enumRule(models.IsValidClientType))
	mustRegister("is-primary-service", enumRule(models.IsValidPrimaryService))
	mustRegister("is-project-volume", enumRule(models.IsValidProjectVolume))
	mustRegister("is-cad-software", enumRule(models.IsValidCadSoftware))
	mustRegister("is-required-output", enumRule(models.IsValidRequiredOutput))
	mustRegister("is-service-type", enumRule(models.IsValidServiceType))
	mustRegister("is-service-detail", enumRule(models.IsValidServiceDetail))
	mustRegister("is-project-status", enumRule(models.IsValidProjectStatus))
}

func enumRule[T ~string](valid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(T(value))
	}
}
