package xendit

import (
	"context"
	"net/url"
)

// PaymentRequestsService issues requests against /payment_requests.
type PaymentRequestsService struct {
	client Requester
}

// CreatePaymentRequestParams are the parameters for
// PaymentRequestsService.Create. Exactly one of PaymentMethod or
// PaymentMethodID must be supplied.
type CreatePaymentRequestParams struct {
	Currency    string
	Amount      float64
	ReferenceID string
	CustomerID  string
	Customer    *CustomerParams
	Country     string
	Description string

	// PaymentMethod describes a payment method created inline;
	// PaymentMethodID references an existing one.
	PaymentMethod   *PaymentMethodParams
	PaymentMethodID string

	CaptureMethod       string
	ChannelProperties   map[string]any
	ShippingInformation map[string]any
	Items               []map[string]any
	Metadata            map[string]any

	// IdempotencyKey, ForUserID, and WithSplitRule are sent as headers
	// when set.
	IdempotencyKey string
	ForUserID      string
	WithSplitRule  string
}

func (p *CreatePaymentRequestParams) validate() error {
	if p.PaymentMethod == nil && p.PaymentMethodID == "" {
		return newValidationError("Either payment_method or payment_method_id is required")
	}
	if p.PaymentMethod != nil {
		if err := validatePaymentMethodParams(p.PaymentMethod); err != nil {
			return err
		}
		if p.PaymentMethod.requiresCustomer() && p.CustomerID == "" && p.Customer == nil {
			return newValidationError("customer_id or customer object is required for this payment method")
		}
	}
	return nil
}

func (p *CreatePaymentRequestParams) body() map[string]any {
	body := map[string]any{}
	putString(body, "currency", p.Currency)
	putFloat(body, "amount", p.Amount)
	putString(body, "reference_id", p.ReferenceID)
	putString(body, "customer_id", p.CustomerID)
	putString(body, "country", p.Country)
	putString(body, "description", p.Description)
	putString(body, "payment_method_id", p.PaymentMethodID)
	putString(body, "capture_method", p.CaptureMethod)
	putMap(body, "channel_properties", p.ChannelProperties)
	putMap(body, "shipping_information", p.ShippingInformation)
	putSlice(body, "items", p.Items)
	putMap(body, "metadata", p.Metadata)
	if p.Customer != nil {
		body["customer"] = p.Customer.toBody()
	}
	if p.PaymentMethod != nil {
		body["payment_method"] = p.PaymentMethod.toBody()
	}
	return body
}

func (p *CreatePaymentRequestParams) headers() map[string]string {
	headers := baseHeaders(p.IdempotencyKey, p.ForUserID)
	if p.WithSplitRule != "" {
		headers["with-split-rule"] = p.WithSplitRule
	}
	return headers
}

// Create opens a new payment request.
func (s *PaymentRequestsService) Create(ctx context.Context, params CreatePaymentRequestParams) (PaymentRequest, error) {
	if err := params.validate(); err != nil {
		return PaymentRequest{}, err
	}

	response, err := s.client.Post(ctx, "/payment_requests", params.body(), params.headers())
	if err != nil {
		return PaymentRequest{}, err
	}
	return NewPaymentRequest(response), nil
}

// Get fetches a payment request by ID. headers are forwarded verbatim.
func (s *PaymentRequestsService) Get(ctx context.Context, id string, headers map[string]string) (PaymentRequest, error) {
	response, err := s.client.Get(ctx, "/payment_requests/"+id, nil, headers)
	if err != nil {
		return PaymentRequest{}, err
	}
	return NewPaymentRequest(response), nil
}

// ListPaymentRequestsParams filter a payment request listing. Zero values
// are omitted from the query.
type ListPaymentRequestsParams struct {
	ReferenceID string
	CustomerID  string
	Status      string
	Limit       int
	AfterID     string
	BeforeID    string
	CreatedGte  string
	CreatedLte  string
	UpdatedGte  string
	UpdatedLte  string
}

func (p *ListPaymentRequestsParams) query() url.Values {
	return listQuery(
		"reference_id", p.ReferenceID,
		"customer_id", p.CustomerID,
		"status", p.Status,
		"limit", limitValue(p.Limit),
		"after_id", p.AfterID,
		"before_id", p.BeforeID,
		"created_gte", p.CreatedGte,
		"created_lte", p.CreatedLte,
		"updated_gte", p.UpdatedGte,
		"updated_lte", p.UpdatedLte,
	)
}

// PaymentRequestList is one page of payment requests.
type PaymentRequestList struct {
	Data    []PaymentRequest
	HasMore bool
}

// List fetches a page of payment requests.
func (s *PaymentRequestsService) List(ctx context.Context, params ListPaymentRequestsParams) (PaymentRequestList, error) {
	response, err := s.client.Get(ctx, "/payment_requests", params.query(), nil)
	if err != nil {
		return PaymentRequestList{}, err
	}

	list := PaymentRequestList{
		Data:    []PaymentRequest{},
		HasMore: listHasMore(response),
	}
	for _, entry := range listData(response) {
		list.Data = append(list.Data, NewPaymentRequest(asAttrs(entry)))
	}
	return list, nil
}

// Authorize submits the OTP auth code for a payment request awaiting direct
// debit validation. headers are forwarded verbatim.
func (s *PaymentRequestsService) Authorize(ctx context.Context, id, authCode string, headers map[string]string) (PaymentRequest, error) {
	if authCode == "" {
		return PaymentRequest{}, newValidationError("auth_code is required")
	}

	body := map[string]any{"auth_code": authCode}
	response, err := s.client.Post(ctx, "/payment_requests/"+id+"/auth", body, headers)
	if err != nil {
		return PaymentRequest{}, err
	}
	return NewPaymentRequest(response), nil
}

// ResendAuth asks the channel to redeliver the auth code for a payment
// request awaiting validation. headers are forwarded verbatim.
func (s *PaymentRequestsService) ResendAuth(ctx context.Context, id string, headers map[string]string) (PaymentRequest, error) {
	response, err := s.client.Post(ctx, "/payment_requests/"+id+"/auth/resend", map[string]any{}, headers)
	if err != nil {
		return PaymentRequest{}, err
	}
	return NewPaymentRequest(response), nil
}
