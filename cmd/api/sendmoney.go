package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// sendMoneyHandler serves POST /send-money. Disbursements share the
// collection pipeline; only the upstream endpoint differs.
func (app *application) sendMoneyHandler(w http.ResponseWriter, r *http.Request) {
	payload, ok := app.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	body, err := app.marz.SendMoney(r.Context(), payload)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusCreated, body)
}

// getSendMoneyHandler serves GET /send-money/{transactionUUID}.
func (app *application) getSendMoneyHandler(w http.ResponseWriter, r *http.Request) {
	transactionUUID := chi.URLParam(r, "transactionUUID")

	body, err := app.marz.GetSendMoney(r.Context(), transactionUUID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}

func (app *application) sendMoneyServicesHandler(w http.ResponseWriter, r *http.Request) {
	body, err := app.marz.SendMoneyServices(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}
