package utils

import (
	"radiox-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeScheduleAppointmentRequest(t *testing.T) {
	request := &requests.ScheduleAppointment{
		PatientID:   "  123456  ",
		ServiceName: " X-Ray Scan ",
		Date:        " 2026-09-15 ",
		Location:    " New York ",
		Schedule:    requests.ScheduleRequest{StartTime: " 10:00 AM ", Duration: 30},
		PatientName: requests.PersonNameRequest{FirstName: " John ", LastName: " Doe "},
		DoctorName:  requests.PersonNameRequest{FirstName: " Jane ", LastName: " Smith "},
	}

	SanitizeScheduleAppointmentRequest(request)

	assert.Equal(t, "123456", request.PatientID)
	assert.Equal(t, "X-Ray Scan", request.ServiceName)
	assert.Equal(t, "2026-09-15", request.Date)
	assert.Equal(t, "New York", request.Location)
	assert.Equal(t, "10:00 AM", request.Schedule.StartTime)
	assert.Equal(t, "John", request.PatientName.FirstName)
	assert.Equal(t, "Smith", request.DoctorName.LastName)
}

func TestSanitizeCreateBookingRequest(t *testing.T) {
	request := &requests.CreateBooking{
		Appointment: requests.ScheduleAppointment{
			PatientID: " 123456 ",
		},
		PatientEmail: "  JOHN.DOE@Example.COM  ",
		Amount:       120,
	}

	SanitizeCreateBookingRequest(request)

	assert.Equal(t, "123456", request.Appointment.PatientID)
	assert.Equal(t, "john.doe@example.com", request.PatientEmail, "email should be lowercase and trimmed")
}

func TestSanitizeCancelAppointmentRequest(t *testing.T) {
	request := &requests.CancelAppointment{Reason: "  feeling better  "}

	SanitizeCancelAppointmentRequest(request)

	assert.Equal(t, "feeling better", request.Reason)
}
