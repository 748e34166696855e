package request

import "encoding/json"

// PaymentCreateRequest carries the provider payload for the payment route.
//
// `provider_payload` is kept as raw JSON to support varying provider
// schemas; the usecase enriches it with the invoice linkage and amount.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
