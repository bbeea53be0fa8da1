package bookings

import (
	"context"
	"fmt"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
	"radiox-service/internal/pkg/exceptions"
	"radiox-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository     contracts.BookingRepository
	AppointmentUsecase    contracts.AppointmentUsecase
	LockerService         contracts.LockerService
	PaymentGatewayService contracts.PaymentGatewayService
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	appointmentUsecase contracts.AppointmentUsecase,
	lockerService contracts.LockerService,
	paymentGatewayService contracts.PaymentGatewayService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:     bookingRepository,
			AppointmentUsecase:    appointmentUsecase,
			LockerService:         lockerService,
			PaymentGatewayService: paymentGatewayService,
			MailerService:         mailerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// CreateBooking holds the slot, schedules the appointment, and persists the booking in
// the booked state. The returned token scopes the payment steps to this booking.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Appointment.Date),
		zap.String(constvars.LoggingStartTimeKey, request.Appointment.Schedule.StartTime),
	)

	utils.SanitizeCreateBookingRequest(request)

	currency := request.Currency
	if currency == "" {
		currency = uc.InternalConfig.Booking.DefaultCurrency
	}

	slotKey := utils.BuildSlotKey(
		request.Appointment.DoctorName.FirstName,
		request.Appointment.DoctorName.LastName,
		request.Appointment.Date,
		request.Appointment.Schedule.StartTime,
	)
	holdKey := fmt.Sprintf(constvars.RedisSlotHoldKeyFormat, slotKey)
	holdExpiry := time.Duration(uc.InternalConfig.Booking.SlotHoldExpiryTimeInMinutes) * time.Minute

	acquired, holdValue, err := uc.LockerService.TryLock(ctx, holdKey, holdExpiry)
	if err != nil {
		return responses.CreateBooking{}, err
	}
	if !acquired {
		uc.Log.Info("bookingUsecase.CreateBooking slot already held",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKeyKey, slotKey),
		)
		return responses.CreateBooking{}, exceptions.ErrSlotHeld(nil)
	}

	scheduled, err := uc.AppointmentUsecase.Schedule(ctx, &request.Appointment)
	if err != nil {
		// Slot conflict or store failure; the hold must not outlive the attempt.
		if unlockErr := uc.LockerService.Unlock(ctx, holdKey, holdValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.CreateBooking error releasing slot hold",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
		return responses.CreateBooking{}, err
	}

	now := time.Now()
	booking := &models.Booking{
		AppointmentID: scheduled.AppointmentID,
		PatientEmail:  request.PatientEmail,
		State:         models.BookingBooked,
		Amount:        request.Amount,
		Currency:      currency,
		SlotHoldValue: holdValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	bookingID, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.abortBookingAttempt(ctx, holdKey, holdValue, scheduled.AppointmentID)
		return responses.CreateBooking{}, err
	}

	token, err := utils.GenerateBookingJWT(
		bookingID,
		uc.InternalConfig.Booking.TokenSecret,
		uc.InternalConfig.Booking.TokenExpiryTimeInMinutes,
	)
	if err != nil {
		uc.abortBookingAttempt(ctx, holdKey, holdValue, scheduled.AppointmentID)
		return responses.CreateBooking{}, exceptions.ErrBookingTokenInvalid(err)
	}

	uc.Log.Info("bookingUsecase.CreateBooking booking created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingAppointmentIDKey, scheduled.AppointmentID),
	)
	return responses.CreateBooking{
		Booking:      booking.ConvertIntoResponse(),
		BookingToken: token,
	}, nil
}

func (uc *bookingUsecase) FindByID(ctx context.Context, bookingID string) (responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return responses.Booking{}, err
	}
	if booking == nil {
		return responses.Booking{}, exceptions.ErrBookingNotFound(nil)
	}
	return booking.ConvertIntoResponse(), nil
}

func (uc *bookingUsecase) StartPayment(ctx context.Context, request *requests.StartPayment) (responses.StartPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.StartPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	booking, err := uc.resolveBookingFromToken(ctx, request.BookingToken)
	if err != nil {
		return responses.StartPayment{}, err
	}

	if !booking.State.CanTransitionTo(models.BookingPaymentInProgress) {
		return responses.StartPayment{}, exceptions.ErrBookingInvalidTransition(string(booking.State), string(models.BookingPaymentInProgress))
	}

	appointment, err := uc.AppointmentUsecase.FindByID(ctx, booking.AppointmentID)
	if err != nil {
		return responses.StartPayment{}, err
	}

	session, err := uc.PaymentGatewayService.CreateCheckoutSession(ctx, &contracts.CheckoutSessionInput{
		Amount:      booking.Amount,
		Currency:    booking.Currency,
		ProductName: appointment.ServiceName,
		ReferenceID: booking.ID,
		SuccessURL:  request.SuccessURL,
		CancelURL:   request.CancelURL,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.StartPayment error creating checkout session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return responses.StartPayment{}, err
	}

	booking.State = models.BookingPaymentInProgress
	booking.PaymentSessionID = session.ID
	booking.PaymentURL = session.URL
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		return responses.StartPayment{}, err
	}

	uc.Log.Info("bookingUsecase.StartPayment payment started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return responses.StartPayment{
		SessionID:  session.ID,
		PaymentURL: session.URL,
		State:      string(booking.State),
	}, nil
}

func (uc *bookingUsecase) ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, request.Succeeded),
	)

	booking, err := uc.resolveBookingFromToken(ctx, request.BookingToken)
	if err != nil {
		return responses.Booking{}, err
	}

	nextState := models.BookingConfirmed
	if !request.Succeeded {
		nextState = models.BookingPaymentFailed
	}
	if !booking.State.CanTransitionTo(nextState) {
		return responses.Booking{}, exceptions.ErrBookingInvalidTransition(string(booking.State), string(nextState))
	}

	booking.State = nextState
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		return responses.Booking{}, err
	}

	if nextState == models.BookingConfirmed {
		uc.releaseSlotHold(ctx, booking)
		uc.sendConfirmationEmail(ctx, booking)
	}

	uc.Log.Info("bookingUsecase.ConfirmPayment booking state updated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingBookingStateKey, string(booking.State)),
	)
	return booking.ConvertIntoResponse(), nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID string) (responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return responses.Booking{}, err
	}
	if booking == nil {
		return responses.Booking{}, exceptions.ErrBookingNotFound(nil)
	}

	// Cancelling twice is a no-op, not an error.
	if booking.State == models.BookingCancelled {
		return booking.ConvertIntoResponse(), nil
	}
	if !booking.State.CanTransitionTo(models.BookingCancelled) {
		return responses.Booking{}, exceptions.ErrBookingInvalidTransition(string(booking.State), string(models.BookingCancelled))
	}

	if _, err := uc.AppointmentUsecase.Cancel(ctx, booking.AppointmentID, &requests.CancelAppointment{Reason: "Booking cancelled"}); err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, booking.AppointmentID),
			zap.Error(err),
		)
		return responses.Booking{}, err
	}

	booking.State = models.BookingCancelled
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		return responses.Booking{}, err
	}

	uc.releaseSlotHold(ctx, booking)

	uc.Log.Info("bookingUsecase.CancelBooking booking cancelled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return booking.ConvertIntoResponse(), nil
}

// abortBookingAttempt rolls back a half-created booking: the slot hold is released and
// the already-scheduled appointment is cancelled so the slot frees up right away instead
// of waiting for the hold TTL. Rollback failures are logged, not returned; the caller's
// original error is the one that matters.
func (uc *bookingUsecase) abortBookingAttempt(ctx context.Context, holdKey, holdValue, appointmentID string) {
	if err := uc.LockerService.Unlock(ctx, holdKey, holdValue); err != nil {
		uc.Log.Error("bookingUsecase.abortBookingAttempt error releasing slot hold",
			zap.String(constvars.LoggingRedisKey, holdKey),
			zap.Error(err),
		)
	}
	if _, err := uc.AppointmentUsecase.Cancel(ctx, appointmentID, &requests.CancelAppointment{Reason: "Booking creation failed"}); err != nil {
		uc.Log.Error("bookingUsecase.abortBookingAttempt error cancelling orphaned appointment",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) resolveBookingFromToken(ctx context.Context, token string) (*models.Booking, error) {
	bookingID, err := utils.ParseBookingJWT(token, uc.InternalConfig.Booking.TokenSecret)
	if err != nil {
		return nil, exceptions.ErrBookingTokenInvalid(err)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	return booking, nil
}

// releaseSlotHold drops the redis hold once the unique index alone protects the slot
// (confirmed) or the slot is free again (cancelled). A failed unlock only gets logged;
// the hold expires on its own.
func (uc *bookingUsecase) releaseSlotHold(ctx context.Context, booking *models.Booking) {
	if booking.SlotHoldValue == "" {
		return
	}

	appointment, err := uc.AppointmentUsecase.FindByID(ctx, booking.AppointmentID)
	if err != nil {
		uc.Log.Error("bookingUsecase.releaseSlotHold error fetching appointment",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return
	}

	slotKey := utils.BuildSlotKey(
		appointment.DoctorName.FirstName,
		appointment.DoctorName.LastName,
		appointment.Date,
		appointment.Schedule.StartTime,
	)
	holdKey := fmt.Sprintf(constvars.RedisSlotHoldKeyFormat, slotKey)

	if err := uc.LockerService.Unlock(ctx, holdKey, booking.SlotHoldValue); err != nil {
		uc.Log.Error("bookingUsecase.releaseSlotHold error releasing hold",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingRedisKey, holdKey),
			zap.Error(err),
		)
		return
	}
	booking.SlotHoldValue = ""
}

// sendConfirmationEmail queues the confirmation; delivery problems never fail the
// confirm call itself.
func (uc *bookingUsecase) sendConfirmationEmail(ctx context.Context, booking *models.Booking) {
	appointment, err := uc.AppointmentUsecase.FindByID(ctx, booking.AppointmentID)
	if err != nil {
		uc.Log.Error("bookingUsecase.sendConfirmationEmail error fetching appointment",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return
	}

	payload := utils.BuildConfirmationEmailPayload(booking.PatientEmail, appointment, booking.Amount, booking.Currency)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Error("bookingUsecase.sendConfirmationEmail error queueing email",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingEmailToKey, booking.PatientEmail),
			zap.Error(err),
		)
	}
}
