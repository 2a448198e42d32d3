package marzpay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() CollectionRequest {
	return CollectionRequest{
		PhoneNumber: "+256700000000",
		Amount:      1000,
		Country:     "UG",
		Reference:   "123e4567-e89b-12d3-a456-426614174000",
	}
}

func TestCreateCollection_FormEncoding(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/collect-money", r.URL.Path)
		assert.Equal(t, "Basic dGVzdC1jcmVk", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+256700000000", r.PostForm.Get("phone_number"))
		assert.Equal(t, "1000", r.PostForm.Get("amount"))
		assert.Equal(t, "UG", r.PostForm.Get("country"))
		assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", r.PostForm.Get("reference"))
		assert.False(t, r.PostForm.Has("description"))
		assert.False(t, r.PostForm.Has("callback_url"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"successful","data":{"transaction":{"reference":"123e4567-e89b-12d3-a456-426614174000"}}}`))
	}))
	defer upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")

	body, err := client.CreateCollection(context.Background(), testRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"successful","data":{"transaction":{"reference":"123e4567-e89b-12d3-a456-426614174000"}}}`, string(body))
}

func TestCreateCollection_OptionalFields(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Payment for services", r.PostForm.Get("description"))
		assert.Equal(t, "https://example.com/webhook", r.PostForm.Get("callback_url"))
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")

	req := testRequest()
	req.Description = "Payment for services"
	req.CallbackURL = "https://example.com/webhook"

	_, err := client.CreateCollection(context.Background(), req)
	require.NoError(t, err)
}

func TestGetEndpoints_Paths(t *testing.T) {
	cases := []struct {
		name     string
		call     func(*Client) error
		wantPath string
	}{
		{
			"collection status",
			func(c *Client) error {
				_, err := c.GetCollection(context.Background(), "abc-123")
				return err
			},
			"/collect-money/abc-123",
		},
		{
			"collection services",
			func(c *Client) error {
				_, err := c.CollectionServices(context.Background())
				return err
			},
			"/collect-money/services",
		},
		{
			"send money status",
			func(c *Client) error {
				_, err := c.GetSendMoney(context.Background(), "def-456")
				return err
			},
			"/send-money/def-456",
		},
		{
			"send money services",
			func(c *Client) error {
				_, err := c.SendMoneyServices(context.Background())
				return err
			},
			"/send-money/services",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				assert.Equal(t, http.MethodGet, r.Method)
				w.Write([]byte(`{}`))
			}))
			defer upstream.Close()

			client := New(upstream.URL, "dGVzdC1jcmVk")
			require.NoError(t, tc.call(client))
			assert.Equal(t, tc.wantPath, gotPath)
		})
	}
}

func TestSendMoney_PostsDisbursementEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-money", r.URL.Path)
		w.Write([]byte(`{"status":"successful"}`))
	}))
	defer upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")

	_, err := client.SendMoney(context.Background(), testRequest())
	require.NoError(t, err)
}

func TestDo_NonSuccessStatusBecomesAPIError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"insufficient_funds"}`))
	}))
	defer upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")

	_, err := client.CreateCollection(context.Background(), testRequest())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.JSONEq(t, `{"error":"insufficient_funds"}`, string(apiErr.Body))
}

func TestDo_ConnectionFailureIsNotAPIError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")

	_, err := client.CollectionServices(context.Background())
	require.Error(t, err)

	_, ok := err.(*APIError)
	assert.False(t, ok)
}

func TestDo_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	client := New(upstream.URL, "dGVzdC1jcmVk")
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.CollectionServices(context.Background())
	require.Error(t, err)

	_, ok := err.(*APIError)
	assert.False(t, ok)
}
