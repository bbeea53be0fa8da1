package appointments

import (
	"context"
	"fmt"
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

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                logger,
	}
}

func (ctrl *AppointmentController) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get(constvars.URLQueryParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

func (ctrl *AppointmentController) GetAppointmentsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

func (ctrl *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentGetSuccess, result)
}

func (ctrl *AppointmentController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScheduleAppointment)
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

	response, err := ctrl.AppointmentUsecase.Schedule(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentScheduledSuccess, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.UpdateAppointment)
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

	response, err := ctrl.AppointmentUsecase.Update(ctx, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.AppointmentUpdatedSuccessFmt, appointmentID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.CancelAppointment)
	// The cancel body is optional; an empty body cancels without a reason.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&request)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Cancel(ctx, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.AppointmentCancelledSuccessFmt, appointmentID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AppointmentController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Complete(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.AppointmentCompletedSuccessFmt, appointmentID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AppointmentController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctor := r.URL.Query().Get(constvars.URLQueryParamDoctor)
	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if doctor == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(nil, constvars.URLQueryParamDoctor))
		return
	}
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(nil, constvars.URLQueryParamDate))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.AvailableSlots(ctx, doctor, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityGetSuccess, result)
}
