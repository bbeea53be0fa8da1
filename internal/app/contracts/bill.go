package contracts

import (
	"context"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
)

type BillRepository interface {
	Insert(ctx context.Context, bill *models.Bill) (string, error)
	FindByID(ctx context.Context, billID string) (*models.Bill, error)
	Update(ctx context.Context, bill *models.Bill) error
	DeleteByID(ctx context.Context, billID string) error
}

type BillUsecase interface {
	GenerateBill(ctx context.Context, request *requests.GenerateBill) (responses.GenerateBill, error)
	ViewBill(ctx context.Context, billID string) (responses.Bill, error)
	UpdateBill(ctx context.Context, billID string, request *requests.UpdateBill) (responses.Bill, error)
	DeleteBill(ctx context.Context, billID string) error
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (responses.CreatePayment, error)
}
