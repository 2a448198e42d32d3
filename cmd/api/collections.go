package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"mintospay/internal/marzpay"
	"mintospay/internal/phone"
)

// decodePaymentRequest runs the shared pipeline for collections and
// disbursements: decode the body, default the country, normalize the phone
// number, validate the struct. It writes the error response itself and
// reports ok=false when the request must not reach the network layer.
func (app *application) decodePaymentRequest(w http.ResponseWriter, r *http.Request) (marzpay.CollectionRequest, bool) {
	var payload marzpay.CollectionRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return payload, false
	}

	if payload.Country == "" {
		payload.Country = "UG"
	}

	normalized, err := phone.Normalize(payload.PhoneNumber)
	if err != nil {
		app.validationErrorResponse(w, r, errCategoryPhoneNumber, err)
		return payload, false
	}
	payload.PhoneNumber = normalized

	if err := Validate.Struct(payload); err != nil {
		category, friendly := translateValidationError(err)
		app.validationErrorResponse(w, r, category, friendly)
		return payload, false
	}

	return payload, true
}

// translateValidationError turns validator errors into the field-level
// messages callers see, naming the violated bound where one exists.
func translateValidationError(err error) (string, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errCategoryValidation, err
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Reference":
		switch fe.Tag() {
		case "max":
			return errCategoryReference, fmt.Errorf("reference must not exceed %s characters", fe.Param())
		case "reference":
			return errCategoryReference, fmt.Errorf("reference must be a valid UUID")
		default:
			return errCategoryReference, fmt.Errorf("reference is required")
		}
	case "Amount":
		switch fe.Tag() {
		case "gte":
			return errCategoryValidation, fmt.Errorf("amount must be at least %s", fe.Param())
		case "lte":
			return errCategoryValidation, fmt.Errorf("amount must not exceed %s", fe.Param())
		default:
			return errCategoryValidation, fmt.Errorf("amount is required")
		}
	case "Description":
		return errCategoryValidation, fmt.Errorf("description must not exceed %s characters", fe.Param())
	case "CallbackURL":
		return errCategoryValidation, fmt.Errorf("callback_url must not exceed %s characters", fe.Param())
	default:
		return errCategoryValidation, fmt.Errorf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}

// createCollectionHandler serves POST /collect-money and POST /v1/pay/initialize.
// On success the provider's 2xx body is relayed verbatim with a 201.
func (app *application) createCollectionHandler(w http.ResponseWriter, r *http.Request) {
	payload, ok := app.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	body, err := app.marz.CreateCollection(r.Context(), payload)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusCreated, body)
}

// getCollectionHandler serves GET /collect-money/{collectionUUID} and
// GET /v1/pay/verify/{collectionUUID}.
func (app *application) getCollectionHandler(w http.ResponseWriter, r *http.Request) {
	collectionUUID := chi.URLParam(r, "collectionUUID")

	body, err := app.marz.GetCollection(r.Context(), collectionUUID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}

func (app *application) collectionServicesHandler(w http.ResponseWriter, r *http.Request) {
	body, err := app.marz.CollectionServices(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}
