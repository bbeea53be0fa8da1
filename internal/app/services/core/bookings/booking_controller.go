package bookings

import (
	"context"
	"net/http"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/exceptions"
	"radiox-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewBookingController(bookingUsecase contracts.BookingUsecase, logger *zap.Logger) *BookingController {
	return &BookingController{
		BookingUsecase: bookingUsecase,
		Log:            logger,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, response)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBookingID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.FindByID(ctx, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingGetSuccess, result)
}

func (ctrl *BookingController) StartPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartPayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.StartPayment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingPaymentStarted, response)
}

func (ctrl *BookingController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ConfirmPayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.ConfirmPayment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingConfirmedSuccess, response)
}

func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBookingID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CancelBooking(ctx, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingCancelledSuccess, response)
}
