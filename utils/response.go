package utils

import (
	"encoding/json"
	"net/http"

	"klu-checkout/models"
)

// SendErrorResponse writes the uniform {detail} error shape.
func SendErrorResponse(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}

// SendRawJSON relays an already-encoded JSON body, as received from the
// backend, without re-encoding it.
func SendRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
