package models

// CardInfo carries the card fields collected by the payment form. It only ever
// lives in memory for the duration of a submission and is never persisted.
type CardInfo struct {
	CardNumber      string `json:"card_number" validate:"required,len=16,digits"`
	CardExpiryMonth string `json:"card_expiry_month" validate:"required,expirymonth"`
	CardExpiryYear  string `json:"card_expiry_year" validate:"required,len=2,digits"`
	CardCVV         string `json:"card_cvv" validate:"required,digits,min=3,max=4"`
	CardHolderName  string `json:"card_holder_name" validate:"required,min=2"`
}

// PaymentRequest is the payload sent to the backend create-transaction endpoint.
// Field names match the backend contract exactly.
type PaymentRequest struct {
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	Currency      string   `json:"currency" validate:"required,len=3"`
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	CustomerName  string   `json:"customer_name" validate:"required,min=2"`
	CardInfo      CardInfo `json:"card_info"`
}
