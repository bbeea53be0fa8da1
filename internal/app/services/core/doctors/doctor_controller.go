package doctors

import (
	"context"
	"net/http"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/exceptions"
	"radiox-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
	Log           *zap.Logger
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
		Log:           logger,
	}
}

func (ctrl *DoctorController) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, result)
}

func (ctrl *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorGetSuccess, result)
}
