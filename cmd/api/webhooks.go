package main

import (
	"net/http"
)

type webhookAck struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// webhookHandler serves POST /webhook/callback and /webhook/marz-callback.
// No signature verification and no persistence; the payload is logged and a
// fixed-shape acknowledgement is returned, echoing a transaction identifier
// when the payload carries one.
func (app *application) webhookHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.logger.Infow("webhook received", "path", r.URL.Path, "payload", payload)

	ack := webhookAck{
		Status:  "received",
		Message: "webhook processed successfully",
	}
	for _, key := range []string{"transaction_id", "reference"} {
		if id, ok := payload[key].(string); ok && id != "" {
			ack.TransactionID = id
			break
		}
	}

	writeJSON(w, http.StatusOK, ack)
}
