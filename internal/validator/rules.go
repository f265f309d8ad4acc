package validator

import (
	"log"

	"alertnet_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Radius bounds accepted for user notification preferences, in km.
const (
	MinNotificationRadiusKm = 0.1
	MaxNotificationRadiusKm = 50.0
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-severity", validateSeverity)
	mustRegister("is-alert-status", validateAlertStatus)
	mustRegister("is-vote-type", validateVoteType)
	mustRegister("is-device-kind", validateDeviceKind)
	mustRegister("notification-radius", validateNotificationRadius)
}

func validateSeverity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return models.AlertSeverity(value).Valid()
}

func validateAlertStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.AlertStatus(value).Valid()
}

func validateVoteType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.VoteType(value).Valid()
}

func validateDeviceKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.DeviceKind(value).Valid()
}

func validateNotificationRadius(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return value >= MinNotificationRadiusKm && value <= MaxNotificationRadiusKm
}
