package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klu-checkout/models"
	"klu-checkout/validation"
)

func validPayment() *models.PaymentRequest {
	return &models.PaymentRequest{
		Amount:        99.99,
		Currency:      "USD",
		CustomerEmail: "john@example.com",
		CustomerName:  "John Doe",
		CardInfo: models.CardInfo{
			CardNumber:      "4524212222222646",
			CardExpiryMonth: "12",
			CardExpiryYear:  "25",
			CardCVV:         "123",
			CardHolderName:  "John Doe",
		},
	}
}

func TestValidatePayment_Valid(t *testing.T) {
	schema := validation.NewSchema()

	errs := schema.ValidatePayment(validPayment())
	assert.Nil(t, errs)
}

func TestValidatePayment_SingleFieldFailures(t *testing.T) {
	schema := validation.NewSchema()

	tests := []struct {
		name    string
		mutate  func(*models.PaymentRequest)
		path    string
		message string
	}{
		{
			name:    "missing amount",
			mutate:  func(p *models.PaymentRequest) { p.Amount = 0 },
			path:    "amount",
			message: "Amount is required",
		},
		{
			name:    "negative amount",
			mutate:  func(p *models.PaymentRequest) { p.Amount = -5 },
			path:    "amount",
			message: "Amount must be positive",
		},
		{
			name:    "missing currency",
			mutate:  func(p *models.PaymentRequest) { p.Currency = "" },
			path:    "currency",
			message: "Currency is required",
		},
		{
			name:    "short currency",
			mutate:  func(p *models.PaymentRequest) { p.Currency = "US" },
			path:    "currency",
			message: "Currency must be 3 characters",
		},
		{
			name:    "missing email",
			mutate:  func(p *models.PaymentRequest) { p.CustomerEmail = "" },
			path:    "customer_email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(p *models.PaymentRequest) { p.CustomerEmail = "not-an-email" },
			path:    "customer_email",
			message: "Invalid email",
		},
		{
			name:    "missing name",
			mutate:  func(p *models.PaymentRequest) { p.CustomerName = "" },
			path:    "customer_name",
			message: "Name is required",
		},
		{
			name:    "short name",
			mutate:  func(p *models.PaymentRequest) { p.CustomerName = "J" },
			path:    "customer_name",
			message: "Name must be at least 2 characters",
		},
		{
			name:    "missing card number",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardNumber = "" },
			path:    "card_info.card_number",
			message: "Card number is required",
		},
		{
			name:    "short card number",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardNumber = "4524" },
			path:    "card_info.card_number",
			message: "Card number must be 16 digits",
		},
		{
			name:    "non-numeric card number",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardNumber = "4524x12222222646" },
			path:    "card_info.card_number",
			message: "Card number must be 16 digits",
		},
		{
			name:    "missing expiry month",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardExpiryMonth = "" },
			path:    "card_info.card_expiry_month",
			message: "Expiry month is required",
		},
		{
			name:    "month out of range",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardExpiryMonth = "13" },
			path:    "card_info.card_expiry_month",
			message: "Month must be between 01-12",
		},
		{
			name:    "month without leading zero",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardExpiryMonth = "1" },
			path:    "card_info.card_expiry_month",
			message: "Month must be between 01-12",
		},
		{
			name:    "missing expiry year",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardExpiryYear = "" },
			path:    "card_info.card_expiry_year",
			message: "Expiry year is required",
		},
		{
			name:    "long expiry year",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardExpiryYear = "2025" },
			path:    "card_info.card_expiry_year",
			message: "Year must be 2 digits",
		},
		{
			name:    "missing cvv",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardCVV = "" },
			path:    "card_info.card_cvv",
			message: "CVV is required",
		},
		{
			name:    "short cvv",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardCVV = "12" },
			path:    "card_info.card_cvv",
			message: "CVV must be 3 or 4 digits",
		},
		{
			name:    "missing holder name",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardHolderName = "" },
			path:    "card_info.card_holder_name",
			message: "Card holder name is required",
		},
		{
			name:    "short holder name",
			mutate:  func(p *models.PaymentRequest) { p.CardInfo.CardHolderName = "J" },
			path:    "card_info.card_holder_name",
			message: "Name must be at least 2 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := validPayment()
			tt.mutate(payment)

			errs := schema.ValidatePayment(payment)
			require.NotNil(t, errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.path])
		})
	}
}

func TestValidatePayment_FourDigitCVV(t *testing.T) {
	schema := validation.NewSchema()

	payment := validPayment()
	payment.CardInfo.CardCVV = "1234"

	assert.Nil(t, schema.ValidatePayment(payment))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := validation.Errors{"amount": "Amount must be positive"}
	assert.Contains(t, errs.Error(), "amount: Amount must be positive")
}
