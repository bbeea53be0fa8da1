package payment_gateway

import (
	"radiox-service/internal/app/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCheckoutSessionParams(t *testing.T) {
	input := &contracts.CheckoutSessionInput{
		Amount:      19.99,
		Currency:    "usd",
		ProductName: "X-Ray Scan",
		ReferenceID: "77b2c3d4e5f6a7b8c9d0e1f2",
	}

	params := buildCheckoutSessionParams(input, "https://example.com/success", "https://example.com/cancel")

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "https://example.com/success", *params.SuccessURL)
	assert.Equal(t, "https://example.com/cancel", *params.CancelURL)
	assert.Equal(t, "77b2c3d4e5f6a7b8c9d0e1f2", *params.ClientReferenceID)

	assert.Len(t, params.LineItems, 1)
	priceData := params.LineItems[0].PriceData
	assert.Equal(t, "usd", *priceData.Currency)
	assert.Equal(t, "X-Ray Scan", *priceData.ProductData.Name)
	assert.Equal(t, int64(1999), *priceData.UnitAmount)

	// url is a plain string on the session response; expanding it is rejected by the API.
	assert.Empty(t, params.Expand)
}

func TestBuildCheckoutSessionParamsWithoutReference(t *testing.T) {
	input := &contracts.CheckoutSessionInput{
		Amount:      120,
		Currency:    "usd",
		ProductName: "Radiology Services",
	}

	params := buildCheckoutSessionParams(input, "https://example.com/success", "https://example.com/cancel")

	assert.Nil(t, params.ClientReferenceID)
	assert.Equal(t, int64(12000), *params.LineItems[0].PriceData.UnitAmount)
}

func TestToSmallestCurrencyUnit(t *testing.T) {
	assert.Equal(t, int64(1999), toSmallestCurrencyUnit(19.99))
	assert.Equal(t, int64(12000), toSmallestCurrencyUnit(120))
	assert.Equal(t, int64(10), toSmallestCurrencyUnit(0.1))
	assert.Equal(t, int64(5685), toSmallestCurrencyUnit(56.85))
}
