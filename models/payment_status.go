package models

// StatusDisplay describes how a transaction status is presented on the
// confirmation page: the banner label and the color band behind it.
type StatusDisplay struct {
	Label string
	Color string
}

var statusDisplays = map[string]StatusDisplay{
	StatusCompleted: {Label: "Payment Successful", Color: "green"},
	StatusFailed:    {Label: "Payment Failed", Color: "red"},
	StatusPending:   {Label: "Payment Processing", Color: "yellow"},
}

// DisplayForStatus maps a backend status to its presentation. Statuses outside
// the known vocabulary get the neutral pending presentation.
func DisplayForStatus(status string) StatusDisplay {
	if d, ok := statusDisplays[status]; ok {
		return d
	}
	return statusDisplays[StatusPending]
}

// Some backend versions report currency as a numeric ISO 4217 code instead of
// the alphabetic one. Map the codes seen in practice; anything else is used
// as-is.
var numericCurrencyCodes = map[string]string{
	"484": "MXN",
	"840": "USD",
	"978": "EUR",
	"826": "GBP",
}

// ResolveCurrency returns the alphabetic currency code for display.
func ResolveCurrency(currency string) string {
	if alpha, ok := numericCurrencyCodes[currency]; ok {
		return alpha
	}
	return currency
}
