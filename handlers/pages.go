package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"klu-checkout/models"
	"klu-checkout/services/transaction"
	"klu-checkout/utils"
	"klu-checkout/validation"
)

// Currency choices offered by the form.
var formCurrencies = []string{"USD", "EUR", "GBP", "MXN"}

// PageHandler serves the checkout pages: the payment form and the
// confirmation view.
type PageHandler struct {
	client *transaction.Client
	schema *validation.Schema

	formTmpl         *template.Template
	confirmationTmpl *template.Template
	errorTmpl        *template.Template
}

func NewPageHandler(client *transaction.Client) (*PageHandler, error) {
	if client == nil {
		return nil, fmt.Errorf("transaction client is required")
	}

	formTmpl, err := template.New("payment-form").Parse(paymentFormTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment form template: %v", err)
	}
	confirmationTmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing confirmation template: %v", err)
	}
	errorTmpl, err := template.New("confirmation-error").Parse(confirmationErrorTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing error template: %v", err)
	}

	return &PageHandler{
		client:           client,
		schema:           validation.NewSchema(),
		formTmpl:         formTmpl,
		confirmationTmpl: confirmationTmpl,
		errorTmpl:        errorTmpl,
	}, nil
}

type formPageData struct {
	Banner     string
	Values     transaction.FormInput
	Errors     validation.Errors
	Currencies []string
}

type confirmationPageData struct {
	Transaction     *models.Transaction
	Display         models.StatusDisplay
	FormattedAmount string
	FormattedDate   string
	Succeeded       bool
	Failed          bool
}

// ShowPaymentForm renders the empty payment form.
func (h *PageHandler) ShowPaymentForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, formPageData{
		Values:     transaction.FormInput{Currency: "USD"},
		Currencies: formCurrencies,
	})
}

// SubmitPayment drives a form submission: transform, validate, create the
// transaction, then redirect to the confirmation page. Validation and backend
// failures re-render the form with everything the customer typed preserved.
func (h *PageHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	if err := r.ParseForm(); err != nil {
		log.Printf("[RequestID: %s] Error parsing payment form: %v", requestID, err)
		h.renderForm(w, http.StatusBadRequest, formPageData{
			Banner:     "Payment failed. Please try again.",
			Values:     transaction.FormInput{Currency: "USD"},
			Currencies: formCurrencies,
		})
		return
	}

	input := transaction.FormInput{
		Amount:          r.PostFormValue("amount"),
		Currency:        r.PostFormValue("currency"),
		CustomerName:    r.PostFormValue("customer_name"),
		CustomerEmail:   r.PostFormValue("customer_email"),
		CardNumber:      r.PostFormValue("card_number"),
		CardExpiryMonth: r.PostFormValue("card_expiry_month"),
		CardExpiryYear:  r.PostFormValue("card_expiry_year"),
		CardCVV:         r.PostFormValue("card_cvv"),
		CardHolderName:  r.PostFormValue("card_holder_name"),
	}

	payload := transaction.BuildPaymentRequest(input)

	// Only syntactically valid input ever reaches the backend.
	if errs := h.schema.ValidatePayment(payload); errs != nil {
		log.Printf("[RequestID: %s] Payment form failed validation (%d fields)", requestID, len(errs))
		h.renderForm(w, http.StatusUnprocessableEntity, formPageData{
			Values:     input,
			Errors:     errs,
			Currencies: formCurrencies,
		})
		return
	}

	tx, err := h.client.CreateTransaction(r.Context(), payload)
	if err != nil {
		detail := "Payment failed. Please try again."
		if apiErr, ok := err.(*models.APIError); ok {
			detail = apiErr.Detail
		}
		log.Printf("[RequestID: %s] Payment submission failed: %v", requestID, err)
		h.renderForm(w, http.StatusOK, formPageData{
			Banner:     detail,
			Values:     input,
			Currencies: formCurrencies,
		})
		return
	}

	log.Printf("[RequestID: %s] Payment submitted, transaction id: %s", requestID, tx.ID)
	http.Redirect(w, r, "/confirmation/"+tx.ID, http.StatusSeeOther)
}

// ShowConfirmation fetches the transaction named in the URL and renders its
// status. A failed fetch renders the error page with a way back to the form
// and no transaction details.
func (h *PageHandler) ShowConfirmation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tx, err := h.client.GetTransaction(r.Context(), id)
	if err != nil {
		log.Printf("Error loading confirmation for transaction %s: %v", id, err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if rerr := h.errorTmpl.Execute(w, struct{ Message string }{"Unable to load transaction details"}); rerr != nil {
			log.Printf("Error rendering confirmation error page: %v", rerr)
		}
		return
	}

	display := models.DisplayForStatus(tx.Status)
	currency := models.ResolveCurrency(tx.Currency)

	data := confirmationPageData{
		Transaction:     tx,
		Display:         display,
		FormattedAmount: utils.FormatAmount(tx.Amount, currency),
		FormattedDate:   tx.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		Succeeded:       tx.Status == models.StatusCompleted,
		Failed:          tx.Status == models.StatusFailed,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := h.confirmationTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering confirmation page: %v", err)
	}
}

func (h *PageHandler) renderForm(w http.ResponseWriter, status int, data formPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.formTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering payment form: %v", err)
	}
}
