package xendit

// Payment statuses.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusSucceeded = "SUCCEEDED"
	PaymentStatusFailed    = "FAILED"
)

// Payment is a realized funds-movement record produced once a payment request
// or payment method is executed.
type Payment struct {
	Resource
}

// NewPayment wraps a decoded payment response body.
func NewPayment(attrs map[string]any) Payment {
	return Payment{NewResource(attrs)}
}

func (p Payment) ID() string               { return p.getString("id") }
func (p Payment) Status() string           { return p.getString("status") }
func (p Payment) Amount() float64          { return p.getFloat("amount") }
func (p Payment) Currency() string         { return p.getString("currency") }
func (p Payment) Country() string          { return p.getString("country") }
func (p Payment) CustomerID() string       { return p.getString("customer_id") }
func (p Payment) ReferenceID() string      { return p.getString("reference_id") }
func (p Payment) Description() string      { return p.getString("description") }
func (p Payment) FailureCode() string      { return p.getString("failure_code") }
func (p Payment) PaymentRequestID() string { return p.getString("payment_request_id") }
func (p Payment) Created() string          { return p.getString("created") }
func (p Payment) Updated() string          { return p.getString("updated") }

// PaymentMethod returns the embedded payment method snapshot, if any.
func (p Payment) PaymentMethod() map[string]any { return p.getMap("payment_method") }

// PaymentDetail returns channel-specific execution details, if any.
func (p Payment) PaymentDetail() map[string]any { return p.getMap("payment_detail") }

// ChannelProperties returns channel-specific request properties, if any.
func (p Payment) ChannelProperties() map[string]any { return p.getMap("channel_properties") }

// Metadata returns the caller-supplied metadata object, if any.
func (p Payment) Metadata() map[string]any { return p.getMap("metadata") }

func (p Payment) IsSuccessful() bool { return p.Status() == PaymentStatusSucceeded }
func (p Payment) IsFailed() bool     { return p.Status() == PaymentStatusFailed }
func (p Payment) IsPending() bool    { return p.Status() == PaymentStatusPending }

// ChannelCode reads the channel code nested in the embedded payment method's
// type-specific object. CARD payments yield the literal "CARD".
func (p Payment) ChannelCode() string {
	return channelCodeOf(p.PaymentMethod())
}

// Equal reports structural equality with another Payment.
func (p Payment) Equal(other Payment) bool {
	return p.equal(other.Resource)
}
