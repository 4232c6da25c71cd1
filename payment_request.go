package xendit

// Payment request statuses.
const (
	PaymentRequestStatusRequiresAction  = "REQUIRES_ACTION"
	PaymentRequestStatusPending         = "PENDING"
	PaymentRequestStatusSucceeded       = "SUCCEEDED"
	PaymentRequestStatusFailed          = "FAILED"
	PaymentRequestStatusAwaitingCapture = "AWAITING_CAPTURE"
)

// PaymentRequest is a customer-facing intent to pay, which may require an
// out-of-band action (redirect, OTP) before reaching a terminal state.
type PaymentRequest struct {
	Resource
}

// NewPaymentRequest wraps a decoded payment request response body.
func NewPaymentRequest(attrs map[string]any) PaymentRequest {
	return PaymentRequest{NewResource(attrs)}
}

func (pr PaymentRequest) ID() string            { return pr.getString("id") }
func (pr PaymentRequest) BusinessID() string    { return pr.getString("business_id") }
func (pr PaymentRequest) CustomerID() string    { return pr.getString("customer_id") }
func (pr PaymentRequest) ReferenceID() string   { return pr.getString("reference_id") }
func (pr PaymentRequest) Currency() string      { return pr.getString("currency") }
func (pr PaymentRequest) Amount() float64       { return pr.getFloat("amount") }
func (pr PaymentRequest) Country() string       { return pr.getString("country") }
func (pr PaymentRequest) Status() string        { return pr.getString("status") }
func (pr PaymentRequest) Description() string   { return pr.getString("description") }
func (pr PaymentRequest) CaptureMethod() string { return pr.getString("capture_method") }
func (pr PaymentRequest) Initiator() string     { return pr.getString("initiator") }
func (pr PaymentRequest) FailureCode() string   { return pr.getString("failure_code") }
func (pr PaymentRequest) Created() string       { return pr.getString("created") }
func (pr PaymentRequest) Updated() string       { return pr.getString("updated") }

// PaymentMethod returns the embedded payment method snapshot, if any.
func (pr PaymentRequest) PaymentMethod() map[string]any { return pr.getMap("payment_method") }

// ChannelProperties returns channel-specific request properties, if any.
func (pr PaymentRequest) ChannelProperties() map[string]any { return pr.getMap("channel_properties") }

// Metadata returns the caller-supplied metadata object, if any.
func (pr PaymentRequest) Metadata() map[string]any { return pr.getMap("metadata") }

func (pr PaymentRequest) IsSuccessful() bool { return pr.Status() == PaymentRequestStatusSucceeded }
func (pr PaymentRequest) IsFailed() bool     { return pr.Status() == PaymentRequestStatusFailed }
func (pr PaymentRequest) IsPending() bool    { return pr.Status() == PaymentRequestStatusPending }

func (pr PaymentRequest) RequiresAction() bool {
	return pr.Status() == PaymentRequestStatusRequiresAction
}

func (pr PaymentRequest) IsAwaitingCapture() bool {
	return pr.Status() == PaymentRequestStatusAwaitingCapture
}

// ActionFor returns the first entry in the actions list matching actionType,
// compared case-insensitively.
func (pr PaymentRequest) ActionFor(actionType string) (map[string]any, bool) {
	return pr.actionFor(actionType)
}

// Equal reports structural equality with another PaymentRequest.
func (pr PaymentRequest) Equal(other PaymentRequest) bool {
	return pr.equal(other.Resource)
}
