package contracts

import (
	"context"
	"radiox-service/internal/pkg/dto/responses"
)

type CheckoutSessionInput struct {
	Amount      float64
	Currency    string
	ProductName string
	ReferenceID string
	SuccessURL  string
	CancelURL   string
}

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, input *CheckoutSessionInput) (*responses.CreatePayment, error)
}
