package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"klu-checkout/models"
	"klu-checkout/utils"
)

const relayTimeout = 30 * time.Second

// TransactionRelay forwards transaction API calls from the form to the
// configured backend. It is stateless: each request opens one outbound call
// and relays its outcome.
type TransactionRelay struct {
	backendURL string
	client     *http.Client
}

func NewTransactionRelay(backendURL string) *TransactionRelay {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &TransactionRelay{
		backendURL: backendURL,
		client: &http.Client{
			Timeout:   relayTimeout,
			Transport: transport,
		},
	}
}

// HandleCollection serves /api/transactions: POST relays a create, GET relays
// a filtered listing. Anything else is a 405.
func (h *TransactionRelay) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.relayCreate(w, r)
	case http.MethodGet:
		h.relayList(w, r)
	default:
		utils.SendErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleItem serves /api/transactions/{id}: GET only.
func (h *TransactionRelay) HandleItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.relayGet(w, r)
}

func (h *TransactionRelay) relayCreate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[RequestID: %s] Error reading create request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, "An error occurred while processing the payment")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.backendURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "An error occurred while processing the payment")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	h.forward(w, req, requestID, "An error occurred while processing the payment")
}

func (h *TransactionRelay) relayList(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	// Forward only the parameters that were actually supplied.
	query := url.Values{}
	for _, key := range []string{"limit", "offset", "status"} {
		if v := r.URL.Query().Get(key); v != "" {
			query.Set(key, v)
		}
	}

	endpoint := h.backendURL + "/transactions"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "An error occurred while fetching transactions")
		return
	}

	h.forward(w, req, requestID, "An error occurred while fetching transactions")
}

func (h *TransactionRelay) relayGet(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	id := mux.Vars(r)["id"]

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.backendURL+"/transactions/"+url.PathEscape(id), nil)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusInternalServerError, "An error occurred while fetching the transaction")
		return
	}

	h.forward(w, req, requestID, "An error occurred while fetching the transaction")
}

// forward executes the outbound call and relays the backend's outcome: raw
// body on success, propagated status plus {detail} on failure, 500 plus the
// fallback detail when no response was received at all.
func (h *TransactionRelay) forward(w http.ResponseWriter, req *http.Request, requestID, fallback string) {
	startTime := time.Now()

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("[RequestID: %s] Backend call failed: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[RequestID: %s] Error reading backend response: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
		return
	}

	if resp.StatusCode >= 400 {
		log.Printf("[RequestID: %s] Backend returned %d in %v", requestID, resp.StatusCode, time.Since(startTime))

		var er models.ErrorResponse
		if err := json.Unmarshal(body, &er); err != nil || er.Detail == "" {
			er.Detail = fallback
		}
		utils.SendErrorResponse(w, resp.StatusCode, er.Detail)
		return
	}

	utils.SendRawJSON(w, http.StatusOK, body)
}
