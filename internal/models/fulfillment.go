package models

// FulfillmentRequest is the NLU service's fulfillment callback payload.
type FulfillmentRequest struct {
	ID     string            `json:"id"`
	Result FulfillmentResult `json:"result"`
}

// FulfillmentResult carries the classified intent and extracted parameters.
type FulfillmentResult struct {
	Action      string            `json:"action"`
	Parameters  map[string]string `json:"parameters"`
	Fulfillment Fulfillment       `json:"fulfillment"`
}

// Fulfillment is the NLU's own proposed utterance for the request.
type Fulfillment struct {
	Speech string `json:"speech"`
}

// FulfillmentResponse is the body this service returns to the NLU callback.
// Success and failure share the shape; the caller never sees a non-200.
type FulfillmentResponse struct {
	Speech      string `json:"speech"`
	DisplayText string `json:"displayText"`
	Source      string `json:"source"`
}

// NLUResult is the distilled outcome of an NLU text query.
type NLUResult struct {
	Action   string
	ToolType string
	Speech   string
}
