package contracts

import (
	"context"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindScheduledByDoctorAndDate(ctx context.Context, doctorFirstName, doctorLastName, date string) ([]models.Appointment, error)
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	DeleteAll(ctx context.Context) error
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, patientID string) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (responses.Appointment, error)
	Schedule(ctx context.Context, request *requests.ScheduleAppointment) (responses.ScheduleAppointment, error)
	Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (responses.Appointment, error)
	Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (responses.Appointment, error)
	Complete(ctx context.Context, appointmentID string) (responses.Appointment, error)
	AvailableSlots(ctx context.Context, doctor, date string) (responses.Availability, error)
}
