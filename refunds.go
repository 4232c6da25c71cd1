package xendit

import "context"

// RefundsService issues requests against /refunds.
type RefundsService struct {
	client Requester
}

// CreateRefundParams are the parameters for RefundsService.Create. One of
// PaymentRequestID or InvoiceID is required, and Reason must be one of the
// refund reason constants.
type CreateRefundParams struct {
	PaymentRequestID string
	InvoiceID        string
	ReferenceID      string
	Currency         string
	Amount           float64
	Reason           string
	Metadata         map[string]any

	// IdempotencyKey and ForUserID are sent as headers when set.
	IdempotencyKey string
	ForUserID      string
}

func (p *CreateRefundParams) validate() error {
	if p.PaymentRequestID == "" && p.InvoiceID == "" {
		return newValidationError("Either payment_request_id or invoice_id is required")
	}
	if err := checkRequired(requiredField{"reason", p.Reason != ""}); err != nil {
		return err
	}
	return checkEnum("reason", p.Reason, refundReasons)
}

func (p *CreateRefundParams) body() map[string]any {
	body := map[string]any{}
	putString(body, "payment_request_id", p.PaymentRequestID)
	putString(body, "invoice_id", p.InvoiceID)
	putString(body, "reference_id", p.ReferenceID)
	putString(body, "currency", p.Currency)
	putFloat(body, "amount", p.Amount)
	putString(body, "reason", p.Reason)
	putMap(body, "metadata", p.Metadata)
	return body
}

// Create initiates a refund against a prior payment request or invoice.
func (s *RefundsService) Create(ctx context.Context, params CreateRefundParams) (Refund, error) {
	if err := params.validate(); err != nil {
		return Refund{}, err
	}

	response, err := s.client.Post(ctx, "/refunds", params.body(), baseHeaders(params.IdempotencyKey, params.ForUserID))
	if err != nil {
		return Refund{}, err
	}
	return NewRefund(response), nil
}

// Get fetches a refund by ID. headers are forwarded verbatim.
func (s *RefundsService) Get(ctx context.Context, id string, headers map[string]string) (Refund, error) {
	response, err := s.client.Get(ctx, "/refunds/"+id, nil, headers)
	if err != nil {
		return Refund{}, err
	}
	return NewRefund(response), nil
}
