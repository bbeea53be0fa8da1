package utils

import (
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
	validate.RegisterValidation("start_time", validateStartTime)
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constvars.AppointmentDateLayout, value)
	return err == nil
}

func validateStartTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constvars.AppointmentTimeLayout, value)
	return err == nil
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidAppointmentStatus(value)
}
