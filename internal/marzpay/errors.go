package marzpay

import "fmt"

// APIError is returned when Marz answers with a non-2xx status. The body is
// kept raw so handlers can relay it to the caller unchanged.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marz pay: http=%d body=%s", e.StatusCode, string(e.Body))
}
