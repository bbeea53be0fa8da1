package utils

import (
	"radiox-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeScheduleAppointmentRequest(input *requests.ScheduleAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.Date = strings.TrimSpace(input.Date)
	input.Location = strings.TrimSpace(input.Location)
	input.Status = strings.TrimSpace(input.Status)
	input.Schedule.StartTime = strings.TrimSpace(input.Schedule.StartTime)
	input.PatientName.FirstName = strings.TrimSpace(input.PatientName.FirstName)
	input.PatientName.LastName = strings.TrimSpace(input.PatientName.LastName)
	input.DoctorName.FirstName = strings.TrimSpace(input.DoctorName.FirstName)
	input.DoctorName.LastName = strings.TrimSpace(input.DoctorName.LastName)
}

func SanitizeUpdateAppointmentRequest(input *requests.UpdateAppointment) {
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.Date = strings.TrimSpace(input.Date)
	input.Location = strings.TrimSpace(input.Location)
	input.Status = strings.TrimSpace(input.Status)
	if input.Schedule != nil {
		input.Schedule.StartTime = strings.TrimSpace(input.Schedule.StartTime)
	}
}

func SanitizeCancelAppointmentRequest(input *requests.CancelAppointment) {
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeGenerateBillRequest(input *requests.GenerateBill) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Service = strings.TrimSpace(input.Service)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	SanitizeScheduleAppointmentRequest(&input.Appointment)
	input.PatientEmail = strings.ToLower(strings.TrimSpace(input.PatientEmail))
}
