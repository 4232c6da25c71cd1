package xendit

// Refund statuses.
const (
	RefundStatusPending   = "PENDING"
	RefundStatusSucceeded = "SUCCEEDED"
	RefundStatusFailed    = "FAILED"
)

// Refund reasons.
const (
	RefundReasonFraudulent          = "FRAUDULENT"
	RefundReasonDuplicate           = "DUPLICATE"
	RefundReasonRequestedByCustomer = "REQUESTED_BY_CUSTOMER"
	RefundReasonCancellation        = "CANCELLATION"
	RefundReasonOthers              = "OTHERS"
)

// Refund is a reversal of funds against a prior payment request or invoice,
// partial or full, optionally fee-bearing.
type Refund struct {
	Resource
}

// NewRefund wraps a decoded refund response body.
func NewRefund(attrs map[string]any) Refund {
	return Refund{NewResource(attrs)}
}

func (r Refund) ID() string                { return r.getString("id") }
func (r Refund) PaymentID() string         { return r.getString("payment_id") }
func (r Refund) InvoiceID() string         { return r.getString("invoice_id") }
func (r Refund) Amount() float64           { return r.getFloat("amount") }
func (r Refund) PaymentMethodType() string { return r.getString("payment_method_type") }
func (r Refund) ChannelCode() string       { return r.getString("channel_code") }
func (r Refund) Currency() string          { return r.getString("currency") }
func (r Refund) Status() string            { return r.getString("status") }
func (r Refund) Country() string           { return r.getString("country") }
func (r Refund) Reason() string            { return r.getString("reason") }
func (r Refund) ReferenceID() string       { return r.getString("reference_id") }
func (r Refund) FailureCode() string       { return r.getString("failure_code") }
func (r Refund) RefundFeeAmount() float64  { return r.getFloat("refund_fee_amount") }
func (r Refund) Created() string           { return r.getString("created") }
func (r Refund) Updated() string           { return r.getString("updated") }

// Metadata returns the caller-supplied metadata object, if any.
func (r Refund) Metadata() map[string]any { return r.getMap("metadata") }

func (r Refund) IsSuccessful() bool { return r.Status() == RefundStatusSucceeded }
func (r Refund) IsFailed() bool     { return r.Status() == RefundStatusFailed }
func (r Refund) IsPending() bool    { return r.Status() == RefundStatusPending }

func (r Refund) IsCustomerRequested() bool { return r.Reason() == RefundReasonRequestedByCustomer }
func (r Refund) IsFraudulent() bool        { return r.Reason() == RefundReasonFraudulent }
func (r Refund) IsDuplicate() bool         { return r.Reason() == RefundReasonDuplicate }
func (r Refund) IsCancellation() bool      { return r.Reason() == RefundReasonCancellation }

// HasRefundFee reports whether a positive refund fee is present.
func (r Refund) HasRefundFee() bool {
	return r.RefundFeeAmount() > 0
}

// NetRefundAmount returns the amount net of the refund fee. Absent or
// non-positive fees leave the amount unchanged.
func (r Refund) NetRefundAmount() float64 {
	if !r.HasRefundFee() {
		return r.Amount()
	}
	return r.Amount() - r.RefundFeeAmount()
}

// Equal reports structural equality with another Refund.
func (r Refund) Equal(other Refund) bool {
	return r.equal(other.Resource)
}
