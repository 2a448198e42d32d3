// Package marzpay is a thin client for the Marz Pay wallet API. One outbound
// call per operation, Basic auth from a single configured credential, 30s
// timeout, no retries.
package marzpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// RequestTimeout bounds every outbound Marz call. One attempt per request;
// the caller retries. The inbound server's write timeout must stay above
// this so a timed-out call can still be reported to the caller.
const RequestTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	credential string // base64-encoded api key, sent as "Basic <credential>"
	httpClient *http.Client
}

func New(baseURL, credential string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		credential: credential,
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

// CreateCollection initiates a mobile-money collection (pull from the
// customer's wallet). The 2xx body is returned verbatim.
func (c *Client) CreateCollection(ctx context.Context, req CollectionRequest) (json.RawMessage, error) {
	return c.postForm(ctx, "/collect-money", formData(req))
}

// GetCollection fetches the status of a collection by its uuid.
func (c *Client) GetCollection(ctx context.Context, collectionID string) (json.RawMessage, error) {
	return c.get(ctx, "/collect-money/"+url.PathEscape(collectionID))
}

// CollectionServices lists the mobile-money providers available for
// collections (MTN, Airtel).
func (c *Client) CollectionServices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/collect-money/services")
}

// SendMoney initiates a disbursement (push to the recipient's wallet).
func (c *Client) SendMoney(ctx context.Context, req SendMoneyRequest) (json.RawMessage, error) {
	return c.postForm(ctx, "/send-money", formData(req))
}

// GetSendMoney fetches the status of a disbursement by its uuid.
func (c *Client) GetSendMoney(ctx context.Context, transactionID string) (json.RawMessage, error) {
	return c.get(ctx, "/send-money/"+url.PathEscape(transactionID))
}

// SendMoneyServices lists the providers available for disbursements.
func (c *Client) SendMoneyServices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/send-money/services")
}

// formData shapes a request into the form fields the Marz API expects.
// Amount goes over the wire stringified; optional fields are omitted when
// empty rather than sent blank.
func formData(req CollectionRequest) url.Values {
	form := url.Values{}
	form.Set("phone_number", req.PhoneNumber)
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("country", req.Country)
	form.Set("reference", req.Reference)
	if req.Description != "" {
		form.Set("description", req.Description)
	}
	if req.CallbackURL != "" {
		form.Set("callback_url", req.CallbackURL)
	}
	return form
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("marz pay build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(httpReq)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("marz pay build request: %w", err)
	}
	return c.do(httpReq)
}

// do issues the single outbound attempt. Non-2xx statuses come back as
// *APIError carrying the raw body; transport failures bubble up wrapped.
func (c *Client) do(httpReq *http.Request) (json.RawMessage, error) {
	httpReq.Header.Set("Authorization", "Basic "+c.credential)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("marz pay request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("marz pay read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	return json.RawMessage(raw), nil
}
