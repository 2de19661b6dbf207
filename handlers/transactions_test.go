package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klu-checkout/handlers"
)

func relayRouter(backendURL string) *mux.Router {
	relay := handlers.NewTransactionRelay(backendURL)
	router := mux.NewRouter()
	router.HandleFunc("/api/transactions", relay.HandleCollection)
	router.HandleFunc("/api/transactions/{id}", relay.HandleItem)
	return router
}

func TestRelay_MethodNotAllowed(t *testing.T) {
	router := relayRouter("http://backend.invalid")

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"delete on collection", http.MethodDelete, "/api/transactions"},
		{"put on collection", http.MethodPut, "/api/transactions"},
		{"delete on item", http.MethodDelete, "/api/transactions/abc"},
		{"post on item", http.MethodPost, "/api/transactions/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"detail":"Method not allowed"}`, rec.Body.String())
		})
	}
}

func TestRelay_CreateForwardsBody(t *testing.T) {
	const payload = `{"amount":99.99,"currency":"USD"}`
	const created = `{"id":"abc","amount":99.99,"currency":"USD","status":"pending"}`

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, payload, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, created)
	}))
	defer backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, created, rec.Body.String())
}

func TestRelay_ListForwardsPresentParams(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "5", query.Get("limit"))
		assert.Equal(t, "failed", query.Get("status"))
		assert.False(t, query.Has("offset"))
		io.WriteString(w, "[]")
	}))
	defer backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?limit=5&status=failed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRelay_GetByID(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/abc", r.URL.Path)
		io.WriteString(w, `{"id":"abc","status":"completed"}`)
	}))
	defer backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"abc","status":"completed"}`, rec.Body.String())
}

func TestRelay_PropagatesBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Transaction not found"}`)
	}))
	defer backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Transaction not found"}`, rec.Body.String())
}

func TestRelay_BackendErrorWithoutDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream blew up")
	}))
	defer backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"detail":"An error occurred while processing the payment"}`, rec.Body.String())
}

func TestRelay_BackendUnreachable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	router := relayRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"An error occurred while fetching the transaction"}`, rec.Body.String())
}
