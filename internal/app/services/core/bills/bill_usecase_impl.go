package bills

import (
	"context"
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

type billUsecase struct {
	BillRepository        contracts.BillRepository
	PaymentGatewayService contracts.PaymentGatewayService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	billUsecaseInstance contracts.BillUsecase
	onceBillUsecase     sync.Once
)

func NewBillUsecase(
	billRepository contracts.BillRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BillUsecase {
	onceBillUsecase.Do(func() {
		billUsecaseInstance = &billUsecase{
			BillRepository:        billRepository,
			PaymentGatewayService: paymentGatewayService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return billUsecaseInstance
}

func (uc *billUsecase) GenerateBill(ctx context.Context, request *requests.GenerateBill) (responses.GenerateBill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.GenerateBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeGenerateBillRequest(request)

	now := time.Now()
	bill := &models.Bill{
		PatientName: request.PatientName,
		Service:     request.Service,
		Amount:      request.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	billID, err := uc.BillRepository.Insert(ctx, bill)
	if err != nil {
		uc.Log.Error("billUsecase.GenerateBill error inserting bill",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return responses.GenerateBill{}, err
	}

	uc.Log.Info("billUsecase.GenerateBill bill inserted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillIDKey, billID),
	)
	return responses.GenerateBill{
		Message: constvars.BillGeneratedSuccess,
		Bill:    bill.ConvertIntoResponse(),
	}, nil
}

func (uc *billUsecase) ViewBill(ctx context.Context, billID string) (responses.Bill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.ViewBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillIDKey, billID),
	)

	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return responses.Bill{}, err
	}
	if bill == nil {
		return responses.Bill{}, exceptions.ErrBillNotFound(nil)
	}
	return bill.ConvertIntoResponse(), nil
}

func (uc *billUsecase) UpdateBill(ctx context.Context, billID string, request *requests.UpdateBill) (responses.Bill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.UpdateBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillIDKey, billID),
	)

	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return responses.Bill{}, err
	}
	if bill == nil {
		return responses.Bill{}, exceptions.ErrBillNotFound(nil)
	}

	if request.PatientName != "" {
		bill.PatientName = request.PatientName
	}
	if request.Service != "" {
		bill.Service = request.Service
	}
	if request.Amount > 0 {
		bill.Amount = request.Amount
	}
	bill.UpdatedAt = time.Now()

	if err := uc.BillRepository.Update(ctx, bill); err != nil {
		uc.Log.Error("billUsecase.UpdateBill error updating bill",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBillIDKey, billID),
			zap.Error(err),
		)
		return responses.Bill{}, err
	}
	return bill.ConvertIntoResponse(), nil
}

func (uc *billUsecase) DeleteBill(ctx context.Context, billID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.DeleteBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillIDKey, billID),
	)

	return uc.BillRepository.DeleteByID(ctx, billID)
}

func (uc *billUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (responses.CreatePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	currency := request.Currency
	if currency == "" {
		currency = uc.InternalConfig.Booking.DefaultCurrency
	}

	session, err := uc.PaymentGatewayService.CreateCheckoutSession(ctx, &contracts.CheckoutSessionInput{
		Amount:      request.Amount,
		Currency:    currency,
		ProductName: "Radiology Services",
	})
	if err != nil {
		uc.Log.Error("billUsecase.CreatePayment error creating checkout session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return responses.CreatePayment{}, err
	}

	uc.Log.Info("billUsecase.CreatePayment session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return *session, nil
}
