package contracts

import (
	"context"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/dto/requests"
	"radiox-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (responses.CreateBooking, error)
	FindByID(ctx context.Context, bookingID string) (responses.Booking, error)
	StartPayment(ctx context.Context, request *requests.StartPayment) (responses.StartPayment, error)
	ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (responses.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (responses.Booking, error)
}
