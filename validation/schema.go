package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"klu-checkout/models"
)

// Errors maps a field path ("customer_name", "card_info.card_number", ...) to a
// human-readable message. It satisfies error so callers can distinguish
// validation failures from backend errors in the type system.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for path, msg := range e {
		parts = append(parts, path+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Schema validates payment requests. Rules are declarative struct tags plus a
// custom expiry-month check; all rules are field-local.
type Schema struct {
	validate *validator.Validate
}

var (
	expiryMonthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	digitsPattern      = regexp.MustCompile(`^[0-9]+$`)
)

func NewSchema() *Schema {
	v := validator.New()

	// Report field paths by their wire names rather than Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("expirymonth", func(fl validator.FieldLevel) bool {
		return expiryMonthPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})

	return &Schema{validate: v}
}

// ValidatePayment returns nil when req passes every rule, otherwise an Errors
// value with one message per failing field.
func (s *Schema) ValidatePayment(req *models.PaymentRequest) Errors {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": "Invalid payment data"}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		out[path] = messageFor(path, fe.Tag())
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the dotted wire path ("PaymentRequest.card_info.card_cvv" -> "card_info.card_cvv").
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

var requiredMessages = map[string]string{
	"amount":                      "Amount is required",
	"currency":                    "Currency is required",
	"customer_email":              "Email is required",
	"customer_name":               "Name is required",
	"card_info.card_number":       "Card number is required",
	"card_info.card_expiry_month": "Expiry month is required",
	"card_info.card_expiry_year":  "Expiry year is required",
	"card_info.card_cvv":          "CVV is required",
	"card_info.card_holder_name":  "Card holder name is required",
}

var patternMessages = map[string]string{
	"amount":                      "Amount must be positive",
	"currency":                    "Currency must be 3 characters",
	"customer_email":              "Invalid email",
	"customer_name":               "Name must be at least 2 characters",
	"card_info.card_number":       "Card number must be 16 digits",
	"card_info.card_expiry_month": "Month must be between 01-12",
	"card_info.card_expiry_year":  "Year must be 2 digits",
	"card_info.card_cvv":          "CVV must be 3 or 4 digits",
	"card_info.card_holder_name":  "Name must be at least 2 characters",
}

func messageFor(path, tag string) string {
	msgs := patternMessages
	if tag == "required" {
		msgs = requiredMessages
	}
	if msg, ok := msgs[path]; ok {
		return msg
	}
	return "Invalid value"
}
