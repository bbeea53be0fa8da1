package appointments

import (
	"context"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/app/services/core/availability"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
	"radiox-service/internal/pkg/exceptions"
	"radiox-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var (
		appointments []models.Appointment
		err          error
	)
	if patientID != "" {
		appointments, err = uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	} else {
		appointments, err = uc.AppointmentRepository.FindAll(ctx)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAll fetched appointments",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)

	response := make([]responses.Appointment, len(appointments))
	for i, eachAppointment := range appointments {
		response[i] = eachAppointment.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return responses.Appointment{}, err
	}
	if appointment == nil {
		uc.Log.Info("appointmentUsecase.FindByID appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return responses.Appointment{}, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment.ConvertIntoResponse(), nil
}

func (uc *appointmentUsecase) Schedule(ctx context.Context, request *requests.ScheduleAppointment) (responses.ScheduleAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Schedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingStartTimeKey, request.Schedule.StartTime),
	)

	utils.SanitizeScheduleAppointmentRequest(request)

	status := models.AppointmentScheduled
	if request.Status != "" {
		status = models.AppointmentStatus(request.Status)
	}

	appointment := &models.Appointment{
		PatientID:   request.PatientID,
		ServiceName: request.ServiceName,
		Date:        request.Date,
		Schedule: models.Schedule{
			StartTime: request.Schedule.StartTime,
			Duration:  request.Schedule.Duration,
		},
		Location: request.Location,
		PatientName: models.PersonName{
			FirstName: request.PatientName.FirstName,
			LastName:  request.PatientName.LastName,
		},
		DoctorName: models.PersonName{
			FirstName: request.DoctorName.FirstName,
			LastName:  request.DoctorName.LastName,
		},
		Status:  status,
		SlotKey: utils.BuildSlotKey(request.DoctorName.FirstName, request.DoctorName.LastName, request.Date, request.Schedule.StartTime),
	}

	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Schedule error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKeyKey, appointment.SlotKey),
			zap.Error(err),
		)
		return responses.ScheduleAppointment{}, err
	}

	uc.Log.Info("appointmentUsecase.Schedule appointment inserted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return responses.ScheduleAppointment{
		Message:       constvars.AppointmentScheduledSuccess,
		AppointmentID: appointmentID,
	}, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	utils.SanitizeUpdateAppointmentRequest(request)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return responses.Appointment{}, err
	}
	if appointment == nil {
		return responses.Appointment{}, exceptions.ErrAppointmentNotFound(nil)
	}

	if request.ServiceName != "" {
		appointment.ServiceName = request.ServiceName
	}
	if request.Date != "" {
		appointment.Date = request.Date
	}
	if request.Schedule != nil {
		if request.Schedule.StartTime != "" {
			appointment.Schedule.StartTime = request.Schedule.StartTime
		}
		if request.Schedule.Duration > 0 {
			appointment.Schedule.Duration = request.Schedule.Duration
		}
	}
	if request.Location != "" {
		appointment.Location = request.Location
	}
	if request.DoctorName != nil {
		appointment.DoctorName = models.PersonName{
			FirstName: request.DoctorName.FirstName,
			LastName:  request.DoctorName.LastName,
		}
	}
	if request.Status != "" && models.AppointmentStatus(request.Status) != appointment.Status {
		if appointment.Status != models.AppointmentScheduled {
			return responses.Appointment{}, exceptions.ErrAppointmentStatusChange(string(appointment.Status), request.Status)
		}
		appointment.Status = models.AppointmentStatus(request.Status)
	}

	appointment.SlotKey = utils.BuildSlotKey(
		appointment.DoctorName.FirstName,
		appointment.DoctorName.LastName,
		appointment.Date,
		appointment.Schedule.StartTime,
	)

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return responses.Appointment{}, err
	}

	return appointment.ConvertIntoResponse(), nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	utils.SanitizeCancelAppointmentRequest(request)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return responses.Appointment{}, err
	}
	if appointment == nil {
		return responses.Appointment{}, exceptions.ErrAppointmentNotFound(nil)
	}

	// Cancelling twice is a no-op, not an error.
	if appointment.Status == models.AppointmentCancelled {
		return appointment.ConvertIntoResponse(), nil
	}
	if appointment.Status == models.AppointmentCompleted {
		return responses.Appointment{}, exceptions.ErrAppointmentStatusChange(string(appointment.Status), string(models.AppointmentCancelled))
	}

	appointment.Status = models.AppointmentCancelled
	appointment.CancellationReason = request.Reason

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return responses.Appointment{}, err
	}

	uc.Log.Info("appointmentUsecase.Cancel appointment cancelled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointment.ConvertIntoResponse(), nil
}

func (uc *appointmentUsecase) Complete(ctx context.Context, appointmentID string) (responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return responses.Appointment{}, err
	}
	if appointment == nil {
		return responses.Appointment{}, exceptions.ErrAppointmentNotFound(nil)
	}

	if appointment.Status == models.AppointmentCompleted {
		return appointment.ConvertIntoResponse(), nil
	}
	if appointment.Status == models.AppointmentCancelled {
		return responses.Appointment{}, exceptions.ErrAppointmentStatusChange(string(appointment.Status), string(models.AppointmentCompleted))
	}

	appointment.Status = models.AppointmentCompleted

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return responses.Appointment{}, err
	}
	return appointment.ConvertIntoResponse(), nil
}

func (uc *appointmentUsecase) AvailableSlots(ctx context.Context, doctor, date string) (responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorKey, doctor),
		zap.String(constvars.LoggingDateKey, date),
	)

	if _, err := utils.ParseAppointmentDate(date); err != nil {
		return responses.Availability{}, exceptions.ErrInputValidation(err)
	}

	firstName, lastName := splitDoctorName(doctor)

	appointments, err := uc.AppointmentRepository.FindScheduledByDoctorAndDate(ctx, firstName, lastName, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AvailableSlots error fetching scheduled appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return responses.Availability{}, err
	}

	grid, err := availability.SlotGrid(
		uc.InternalConfig.Slots.DayStartTime,
		uc.InternalConfig.Slots.DayEndTime,
		uc.InternalConfig.Slots.StepMinutes,
	)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AvailableSlots invalid slot grid configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return responses.Availability{}, exceptions.ErrSlotGridConfig(err)
	}

	busy := make([]availability.Interval, 0, len(appointments))
	for _, eachAppointment := range appointments {
		start, err := utils.ParseStartTime(eachAppointment.Schedule.StartTime)
		if err != nil {
			continue
		}
		duration := eachAppointment.Schedule.Duration
		if duration <= 0 {
			duration = uc.InternalConfig.Slots.StepMinutes
		}
		busy = append(busy, availability.Interval{
			Start: start,
			End:   start.Add(time.Duration(duration) * time.Minute),
		})
	}

	slotDuration := time.Duration(uc.InternalConfig.Slots.StepMinutes) * time.Minute
	freeSlots := availability.FreeSlots(grid, slotDuration, busy)

	uc.Log.Info("appointmentUsecase.AvailableSlots computed free slots",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(freeSlots)),
	)
	return responses.Availability{
		Doctor:    doctor,
		Date:      date,
		TimeSlots: freeSlots,
	}, nil
}

func splitDoctorName(doctor string) (firstName, lastName string) {
	parts := strings.Fields(doctor)
	if len(parts) == 0 {
		return "", ""
	}
	firstName = parts[0]
	if len(parts) > 1 {
		lastName = strings.Join(parts[1:], " ")
	}
	return firstName, lastName
}
