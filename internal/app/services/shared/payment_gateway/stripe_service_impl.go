package payment_gateway

import (
	"context"
	"math"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/responses"
	"radiox-service/internal/pkg/exceptions"
	"sync"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"go.uber.org/zap"
)

var (
	paymentGatewayServiceInstance contracts.PaymentGatewayService
	oncePaymentGatewayService     sync.Once
)

type stripeService struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	oncePaymentGatewayService.Do(func() {
		stripe.Key = internalConfig.Stripe.SecretKey
		instance := &stripeService{
			InternalConfig: internalConfig,
			Log:            logger,
		}
		paymentGatewayServiceInstance = instance
	})
	return paymentGatewayServiceInstance
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, input *contracts.CheckoutSessionInput) (*responses.CreatePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64("amount", input.Amount),
		zap.String("currency", input.Currency),
	)

	successURL := input.SuccessURL
	if successURL == "" {
		successURL = s.InternalConfig.Stripe.SuccessURL
	}
	cancelURL := input.CancelURL
	if cancelURL == "" {
		cancelURL = s.InternalConfig.Stripe.CancelURL
	}

	params := buildCheckoutSessionParams(input, successURL, cancelURL)

	sess, err := checkoutsession.New(params)
	if err != nil {
		customErr := exceptions.ErrStripeCreateSession(err)
		s.Log.Error("stripeService.CreateCheckoutSession error calling checkoutsession.New",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(customErr),
		)
		return nil, customErr
	}

	s.Log.Info("stripeService.CreateCheckoutSession session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sess.ID),
	)
	return &responses.CreatePayment{ID: sess.ID, URL: sess.URL}, nil
}

func buildCheckoutSessionParams(input *contracts.CheckoutSessionInput, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(input.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ProductName),
					},
					UnitAmount: stripe.Int64(toSmallestCurrencyUnit(input.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if input.ReferenceID != "" {
		params.ClientReferenceID = stripe.String(input.ReferenceID)
	}
	return params
}

// toSmallestCurrencyUnit converts a decimal amount into the integer smallest-unit
// amount Stripe expects. Rounding guards against float artifacts like 19.99*100
// truncating to 1998.
func toSmallestCurrencyUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
