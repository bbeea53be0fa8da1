package appointments

import (
	"context"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindScheduledByDoctorAndDate(ctx context.Context, doctorFirstName, doctorLastName, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorFirstName, doctorLastName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Slots: config.Slots{
			DayStartTime: "9:00 AM",
			DayEndTime:   "11:00 AM",
			StepMinutes:  30,
		},
	}
}

func newTestAppointmentUsecase(repo *MockAppointmentRepository) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		InternalConfig:        testInternalConfig(),
		Log:                   zap.NewNop(),
	}
}

func TestAppointmentUsecase_Schedule(t *testing.T) {
	t.Run("Defaults Status And Builds Slot Key", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		var inserted *models.Appointment
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*models.Appointment)
			}).
			Return("66a1b2c3d4e5f6a7b8c9d0e1", nil)

		request := &requests.ScheduleAppointment{
			PatientID:   "123456",
			ServiceName: "X-Ray Scan",
			Date:        "2026-09-15",
			Schedule:    requests.ScheduleRequest{StartTime: "10:00 AM", Duration: 30},
			Location:    "New York",
			PatientName: requests.PersonNameRequest{FirstName: "John", LastName: "Doe"},
			DoctorName:  requests.PersonNameRequest{FirstName: "Jane", LastName: "Smith"},
		}

		response, err := uc.Schedule(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "66a1b2c3d4e5f6a7b8c9d0e1", response.AppointmentID)
		assert.Equal(t, models.AppointmentScheduled, inserted.Status, "absent status should default to Scheduled")
		assert.Equal(t, "jane|smith|2026-09-15|10:00 am", inserted.SlotKey)
	})

	t.Run("Propagates Slot Conflict", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("", exceptions.ErrSlotConflict(nil))

		request := &requests.ScheduleAppointment{
			PatientID:   "123456",
			ServiceName: "X-Ray Scan",
			Date:        "2026-09-15",
			Schedule:    requests.ScheduleRequest{StartTime: "10:00 AM", Duration: 30},
			Location:    "New York",
			PatientName: requests.PersonNameRequest{FirstName: "John"},
			DoctorName:  requests.PersonNameRequest{FirstName: "Jane", LastName: "Smith"},
		}

		_, err := uc.Schedule(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_FindByID(t *testing.T) {
	t.Run("Unknown ID Returns Not Found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		mockRepo.On("FindByID", mock.Anything, "66a1b2c3d4e5f6a7b8c9d0e1").Return(nil, nil)

		_, err := uc.FindByID(context.Background(), "66a1b2c3d4e5f6a7b8c9d0e1")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func scheduledAppointment() *models.Appointment {
	return &models.Appointment{
		ID:          "66a1b2c3d4e5f6a7b8c9d0e1",
		PatientID:   "123456",
		ServiceName: "X-Ray Scan",
		Date:        "2026-09-15",
		Schedule:    models.Schedule{StartTime: "10:00 AM", Duration: 30},
		Location:    "New York",
		PatientName: models.PersonName{FirstName: "John", LastName: "Doe"},
		DoctorName:  models.PersonName{FirstName: "Jane", LastName: "Smith"},
		Status:      models.AppointmentScheduled,
		SlotKey:     "jane|smith|2026-09-15|10:00 am",
	}
}

func TestAppointmentUsecase_Cancel(t *testing.T) {
	t.Run("Scheduled Appointment Gets Cancelled With Reason", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		appointment := scheduledAppointment()
		mockRepo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		mockRepo.On("Update", mock.Anything, appointment).Return(nil)

		response, err := uc.Cancel(context.Background(), appointment.ID, &requests.CancelAppointment{Reason: "feeling better"})

		assert.NoError(t, err)
		assert.Equal(t, "Cancelled", response.Status)
		assert.Equal(t, "feeling better", response.CancellationReason)
	})

	t.Run("Cancelling Twice Is Idempotent", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		appointment := scheduledAppointment()
		appointment.Status = models.AppointmentCancelled
		mockRepo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)

		response, err := uc.Cancel(context.Background(), appointment.ID, &requests.CancelAppointment{})

		assert.NoError(t, err)
		assert.Equal(t, "Cancelled", response.Status)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Completed Appointment Cannot Be Cancelled", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		appointment := scheduledAppointment()
		appointment.Status = models.AppointmentCompleted
		mockRepo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)

		_, err := uc.Cancel(context.Background(), appointment.ID, &requests.CancelAppointment{})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_Update(t *testing.T) {
	t.Run("Reschedule Recomputes Slot Key", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		appointment := scheduledAppointment()
		mockRepo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		mockRepo.On("Update", mock.Anything, appointment).Return(nil)

		request := &requests.UpdateAppointment{
			Date:     "2026-09-16",
			Schedule: &requests.ScheduleRequest{StartTime: "2:00 PM", Duration: 45},
		}

		response, err := uc.Update(context.Background(), appointment.ID, request)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-16", response.Date)
		assert.Equal(t, "2:00 PM", response.Schedule.StartTime)
		assert.Equal(t, "jane|smith|2026-09-16|2:00 pm", appointment.SlotKey)
	})

	t.Run("Status Change Away From Terminal State Is Rejected", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		appointment := scheduledAppointment()
		appointment.Status = models.AppointmentCancelled
		mockRepo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)

		_, err := uc.Update(context.Background(), appointment.ID, &requests.UpdateAppointment{Status: "Scheduled"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestAppointmentUsecase_AvailableSlots(t *testing.T) {
	t.Run("Booked Slots Are Excluded", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		mockRepo.On("FindScheduledByDoctorAndDate", mock.Anything, "Jane", "Smith", "2026-09-15").
			Return([]models.Appointment{*scheduledAppointment()}, nil)

		response, err := uc.AvailableSlots(context.Background(), "Jane Smith", "2026-09-15")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Smith", response.Doctor)
		assert.NotContains(t, response.TimeSlots, "10:00 AM", "booked slot should be excluded")
		assert.Contains(t, response.TimeSlots, "9:00 AM")
		assert.Contains(t, response.TimeSlots, "10:30 AM")
	})

	t.Run("Invalid Date Returns Validation Error", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)

		_, err := uc.AvailableSlots(context.Background(), "Jane Smith", "15-09-2026")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "FindScheduledByDoctorAndDate")
	})

	t.Run("Misconfigured Slot Grid Returns Server Error", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo)
		uc.InternalConfig.Slots.StepMinutes = 0

		mockRepo.On("FindScheduledByDoctorAndDate", mock.Anything, "Jane", "Smith", "2026-09-15").
			Return([]models.Appointment{}, nil)

		_, err := uc.AvailableSlots(context.Background(), "Jane Smith", "2026-09-15")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})
}
