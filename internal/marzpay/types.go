package marzpay

// CollectionRequest is the inbound payload for initiating a collection.
// PhoneNumber must already be normalized to "+256xxxxxxxxx" before the
// request reaches the client; amounts are UGX with no minor-unit scaling.
type CollectionRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gte=500,lte=10000000"`
	Country     string `json:"country"`
	Reference   string `json:"reference" validate:"required,max=50,reference"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
	CallbackURL string `json:"callback_url,omitempty" validate:"omitempty,max=255"`
}

// SendMoneyRequest carries the same shape as CollectionRequest; the Marz API
// takes identical form fields for collections and disbursements.
type SendMoneyRequest = CollectionRequest

// GatewayResponse is the documented shape of a successful Marz reply. The
// gateway relays bodies verbatim, so this type exists for callers and tests
// that want to decode the passthrough.
type GatewayResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data"`
}
