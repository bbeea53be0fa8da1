package bills

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

type BillController struct {
	BillUsecase contracts.BillUsecase
	Log         *zap.Logger
}

func NewBillController(billUsecase contracts.BillUsecase, logger *zap.Logger) *BillController {
	return &BillController{
		BillUsecase: billUsecase,
		Log:         logger,
	}
}

func (ctrl *BillController) GenerateBill(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GenerateBill)
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

	response, err := ctrl.BillUsecase.GenerateBill(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BillGeneratedSuccess, response)
}

func (ctrl *BillController) ViewBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.BillUsecase.ViewBill(ctx, billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillGetSuccess, result)
}

func (ctrl *BillController) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	request := new(requests.UpdateBill)
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

	response, err := ctrl.BillUsecase.UpdateBill(ctx, billID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillUpdatedSuccess, response)
}

func (ctrl *BillController) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.BillUsecase.DeleteBill(ctx, billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillDeletedSuccess, nil)
}

func (ctrl *BillController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePayment)
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

	response, err := ctrl.BillUsecase.CreatePayment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentSessionCreatedSuccess, response)
}
