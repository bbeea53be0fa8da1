package utils

import (
	"fmt"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
	"strings"
)

func BuildConfirmationEmailPayload(toEmail string, appointment responses.Appointment, amount float64, currency string) *requests.EmailPayload {
	patientName := strings.TrimSpace(appointment.PatientName.FirstName + " " + appointment.PatientName.LastName)
	doctorName := strings.TrimSpace(appointment.DoctorName.FirstName + " " + appointment.DoctorName.LastName)

	return &requests.EmailPayload{
		ToEmail:             toEmail,
		FromName:            constvars.EmailConfirmationSender,
		ToName:              patientName,
		ServiceName:         appointment.ServiceName,
		AppointmentDate:     FormatConfirmationDate(appointment.Date),
		AppointmentTime:     appointment.Schedule.StartTime,
		AppointmentLocation: appointment.Location,
		DoctorName:          doctorName,
		AppointmentID:       appointment.ID,
		TotalAmount:         fmt.Sprintf("%.2f %s", amount, strings.ToUpper(currency)),
		ReplyTo:             constvars.EmailConfirmationReplyTo,
		Message:             constvars.EmailConfirmationMessage,
	}
}
