package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"radiox-service/internal/app/services/core/appointments"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
	"radiox-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).(responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Schedule(ctx context.Context, request *requests.ScheduleAppointment) (responses.ScheduleAppointment, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(responses.ScheduleAppointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	return args.Get(0).(responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	return args.Get(0).(responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Complete(ctx context.Context, appointmentID string) (responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).(responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) AvailableSlots(ctx context.Context, doctor, date string) (responses.Availability, error) {
	args := m.Called(ctx, doctor, date)
	return args.Get(0).(responses.Availability), args.Error(1)
}

func newAppointmentTestRouter(mockUsecase *MockAppointmentUsecase) *chi.Mux {
	controller := appointments.NewAppointmentController(mockUsecase, zap.NewNop())
	router := chi.NewRouter()
	attachAppointmentRoutes(router, controller)
	return router
}

func validScheduleRequest() requests.ScheduleAppointment {
	return requests.ScheduleAppointment{
		PatientID:   "123456",
		ServiceName: "X-Ray Scan",
		Date:        "2026-09-15",
		Schedule:    requests.ScheduleRequest{StartTime: "10:00 AM", Duration: 30},
		Location:    "New York",
		PatientName: requests.PersonNameRequest{FirstName: "John", LastName: "Doe"},
		DoctorName:  requests.PersonNameRequest{FirstName: "Jane", LastName: "Smith"},
	}
}

func TestAppointmentRouter_Schedule(t *testing.T) {
	t.Run("Valid Request Returns 200 With Appointment ID", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("Schedule", mock.Anything, mock.AnythingOfType("*requests.ScheduleAppointment")).
			Return(responses.ScheduleAppointment{
				Message:       "Appointment scheduled successfully",
				AppointmentID: "66a1b2c3d4e5f6a7b8c9d0e1",
			}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(validScheduleRequest())
		req := httptest.NewRequest("POST", "/schedule", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Message       string `json:"message"`
				AppointmentID string `json:"appointmentId"`
			} `json:"data"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.True(t, body.Success)
		assert.Equal(t, "Appointment scheduled successfully", body.Data.Message)
		assert.Equal(t, "66a1b2c3d4e5f6a7b8c9d0e1", body.Data.AppointmentID)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Slot Conflict Returns 409", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("Schedule", mock.Anything, mock.AnythingOfType("*requests.ScheduleAppointment")).
			Return(responses.ScheduleAppointment{}, exceptions.ErrSlotConflict(nil))

		router := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(validScheduleRequest())
		req := httptest.NewRequest("POST", "/schedule", bytes.NewBuffer(jsonBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Missing Required Fields Returns 400", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/schedule", bytes.NewBufferString(`{"serviceName":"X-Ray Scan"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Schedule")
	})

	t.Run("Malformed Date Returns 400", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockUsecase)

		request := validScheduleRequest()
		request.Date = "15-09-2026"
		jsonBody, _ := json.Marshal(request)
		req := httptest.NewRequest("POST", "/schedule", bytes.NewBuffer(jsonBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Schedule")
	})
}

func TestAppointmentRouter_GetByID(t *testing.T) {
	t.Run("Unknown ID Returns 404", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("FindByID", mock.Anything, "66a1b2c3d4e5f6a7b8c9d0e1").
			Return(responses.Appointment{}, exceptions.ErrAppointmentNotFound(nil))

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/66a1b2c3d4e5f6a7b8c9d0e1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body struct {
			Success bool `json:"success"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.False(t, body.Success)
	})

	t.Run("Known ID Returns Appointment", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("FindByID", mock.Anything, "66a1b2c3d4e5f6a7b8c9d0e1").
			Return(responses.Appointment{ID: "66a1b2c3d4e5f6a7b8c9d0e1", Status: "Scheduled"}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/66a1b2c3d4e5f6a7b8c9d0e1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAppointmentRouter_Cancel(t *testing.T) {
	t.Run("Cancel With Reason Returns 200", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("Cancel", mock.Anything, "66a1b2c3d4e5f6a7b8c9d0e1", mock.AnythingOfType("*requests.CancelAppointment")).
			Return(responses.Appointment{ID: "66a1b2c3d4e5f6a7b8c9d0e1", Status: "Cancelled"}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("PATCH", "/cancel/66a1b2c3d4e5f6a7b8c9d0e1", bytes.NewBufferString(`{"reason":"feeling better"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Cancel Without Body Returns 200", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("Cancel", mock.Anything, "66a1b2c3d4e5f6a7b8c9d0e1", mock.AnythingOfType("*requests.CancelAppointment")).
			Return(responses.Appointment{ID: "66a1b2c3d4e5f6a7b8c9d0e1", Status: "Cancelled"}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("PATCH", "/cancel/66a1b2c3d4e5f6a7b8c9d0e1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAppointmentRouter_AvailableSlots(t *testing.T) {
	t.Run("Missing Doctor Returns 400", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/slots?date=2026-09-15", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "AvailableSlots")
	})

	t.Run("Valid Query Returns Slots", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockUsecase.On("AvailableSlots", mock.Anything, "Jane Smith", "2026-09-15").
			Return(responses.Availability{
				Doctor:    "Jane Smith",
				Date:      "2026-09-15",
				TimeSlots: []string{"9:00 AM", "9:30 AM"},
			}, nil)

		router := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/slots?doctor=Jane+Smith&date=2026-09-15", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Data responses.Availability `json:"data"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, body.Data.TimeSlots)
	})
}
