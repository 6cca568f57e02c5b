package validator

import (
	"log"

	"jobhunt_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires model-level enums into validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-interview-type", validateInterviewType)
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empties are the job of 'required'
	}
	return models.JobStatus(value).Valid()
}

func validateInterviewType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "phone", "video", "on_site", "technical", "hr", "other":
		return true
	default:
		return false
	}
}
