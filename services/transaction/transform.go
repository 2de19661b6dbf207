package transaction

import (
	"strconv"
	"strings"

	"klu-checkout/models"
)

// FormInput holds the raw string fields exactly as the payment form posts
// them, before any coercion.
type FormInput struct {
	Amount          string
	Currency        string
	CustomerName    string
	CustomerEmail   string
	CardNumber      string
	CardExpiryMonth string
	CardExpiryYear  string
	CardCVV         string
	CardHolderName  string
}

// BuildPaymentRequest maps raw form input to the backend payload shape. It is
// a pure mapping: the input is taken by value and never mutated, and the same
// input always yields an identical payload. Amount is coerced to a number; an
// unparseable amount becomes zero and is rejected downstream by validation.
func BuildPaymentRequest(in FormInput) *models.PaymentRequest {
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil {
		amount = 0
	}

	return &models.PaymentRequest{
		Amount:        amount,
		Currency:      strings.ToUpper(strings.TrimSpace(in.Currency)),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CardInfo: models.CardInfo{
			CardNumber:      strings.TrimSpace(in.CardNumber),
			CardExpiryMonth: strings.TrimSpace(in.CardExpiryMonth),
			CardExpiryYear:  strings.TrimSpace(in.CardExpiryYear),
			CardCVV:         strings.TrimSpace(in.CardCVV),
			CardHolderName:  strings.TrimSpace(in.CardHolderName),
		},
	}
}
