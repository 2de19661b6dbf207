package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"klu-checkout/models"
)

const (
	RequestTimeout = 30 * time.Second

	createFallbackMessage = "An error occurred while processing the payment"
	getFallbackMessage    = "An error occurred while fetching the transaction"
	listFallbackMessage   = "An error occurred while fetching transactions"
)

// Client talks to the backend transaction API. The base URL is fixed at
// construction; there is no runtime reconfiguration.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}
}

// ListParams filters a transaction listing. Nil/empty fields are omitted from
// the query string entirely.
type ListParams struct {
	Limit  *int
	Offset *int
	Status string
}

// CreateTransaction submits a payment to the backend and returns the created
// transaction record.
func (c *Client) CreateTransaction(ctx context.Context, req *models.PaymentRequest) (*models.Transaction, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, models.NewAPIError(0, "", createFallbackMessage)
	}

	startTime := time.Now()
	log.Printf("Sending create transaction request to backend for customer: %s", req.CustomerEmail)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewBuffer(payload))
	if err != nil {
		return nil, models.NewAPIError(0, "", createFallbackMessage)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("Error calling backend create transaction: %v", err)
		return nil, models.NewAPIError(0, "", createFallbackMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError(0, "", createFallbackMessage)
	}

	log.Printf("Backend create transaction response received in %v", time.Since(startTime))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body, createFallbackMessage)
	}

	var tx models.Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		log.Printf("Error decoding create transaction response: %v", err)
		return nil, models.NewAPIError(0, "", createFallbackMessage)
	}

	return &tx, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, models.NewAPIError(0, "", getFallbackMessage)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("Error fetching transaction %s: %v", id, err)
		return nil, models.NewAPIError(0, "", getFallbackMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError(0, "", getFallbackMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body, getFallbackMessage)
	}

	var tx models.Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		log.Printf("Error decoding transaction %s: %v", id, err)
		return nil, models.NewAPIError(0, "", getFallbackMessage)
	}

	return &tx, nil
}

// ListTransactions fetches transactions matching params.
func (c *Client) ListTransactions(ctx context.Context, params ListParams) ([]models.Transaction, error) {
	query := url.Values{}
	if params.Limit != nil {
		query.Set("limit", strconv.Itoa(*params.Limit))
	}
	if params.Offset != nil {
		query.Set("offset", strconv.Itoa(*params.Offset))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	endpoint := c.baseURL + "/transactions"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewAPIError(0, "", listFallbackMessage)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("Error listing transactions: %v", err)
		return nil, models.NewAPIError(0, "", listFallbackMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError(0, "", listFallbackMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body, listFallbackMessage)
	}

	var txs []models.Transaction
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, models.NewAPIError(0, "", listFallbackMessage)
	}

	return txs, nil
}

// errorFromResponse extracts the backend's detail message when it sent one.
func errorFromResponse(statusCode int, body []byte, fallback string) *models.APIError {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return models.NewAPIError(statusCode, "", fallback)
	}
	return models.NewAPIError(statusCode, er.Detail, fallback)
}
