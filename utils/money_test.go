package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"klu-checkout/utils"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"whole dollars", 50, "USD", "$50.00"},
		{"cents", 99.99, "USD", "$99.99"},
		{"euros", 120.5, "EUR", "€120.50"},
		{"pounds", 10, "GBP", "£10.00"},
		{"pesos share the dollar sign", 200, "MXN", "$200.00"},
		{"unknown currency uses the code", 10, "JPY", "JPY 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(tt.amount, tt.currency))
		})
	}
}
