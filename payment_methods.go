package xendit

import (
	"context"
	"net/url"
)

// PaymentMethodsService issues requests against /v2/payment_methods.
type PaymentMethodsService struct {
	client Requester
}

// CreatePaymentMethodParams are the parameters for
// PaymentMethodsService.Create. Type and Reusability are required; direct
// debit methods, and reusable e-wallets, must reference a customer either by
// CustomerID or as an embedded Customer object.
type CreatePaymentMethodParams struct {
	PaymentMethodParams

	CustomerID         string
	Customer           *CustomerParams
	Country            string
	BillingInformation map[string]any

	// IdempotencyKey and ForUserID are sent as headers when set.
	IdempotencyKey string
	ForUserID      string
}

func (p *CreatePaymentMethodParams) validate() error {
	if err := validatePaymentMethodParams(&p.PaymentMethodParams); err != nil {
		return err
	}
	if p.requiresCustomer() && p.CustomerID == "" && p.Customer == nil {
		return newValidationError("customer_id or customer object is required for this payment method")
	}
	return nil
}

func (p *CreatePaymentMethodParams) body() map[string]any {
	body := p.PaymentMethodParams.toBody()
	putString(body, "customer_id", p.CustomerID)
	putString(body, "country", p.Country)
	putMap(body, "billing_information", p.BillingInformation)
	if p.Customer != nil {
		body["customer"] = p.Customer.toBody()
	}
	return body
}

// Create tokenizes a new payment method.
func (s *PaymentMethodsService) Create(ctx context.Context, params CreatePaymentMethodParams) (PaymentMethod, error) {
	if err := params.validate(); err != nil {
		return PaymentMethod{}, err
	}

	response, err := s.client.Post(ctx, "/v2/payment_methods", params.body(), baseHeaders(params.IdempotencyKey, params.ForUserID))
	if err != nil {
		return PaymentMethod{}, err
	}
	return NewPaymentMethod(response), nil
}

// Get fetches a payment method by ID. headers are forwarded verbatim.
func (s *PaymentMethodsService) Get(ctx context.Context, id string, headers map[string]string) (PaymentMethod, error) {
	response, err := s.client.Get(ctx, "/v2/payment_methods/"+id, nil, headers)
	if err != nil {
		return PaymentMethod{}, err
	}
	return NewPaymentMethod(response), nil
}

// ListPaymentMethodsParams filter a payment method listing. Zero values are
// omitted from the query.
type ListPaymentMethodsParams struct {
	ID          string
	Type        string
	Reusability string
	ReferenceID string
	CustomerID  string
	Limit       int
	AfterID     string
	BeforeID    string
	CreatedGte  string
	CreatedLte  string
	UpdatedGte  string
	UpdatedLte  string
}

func (p *ListPaymentMethodsParams) query() url.Values {
	return listQuery(
		"id", p.ID,
		"type", p.Type,
		"reusability", p.Reusability,
		"reference_id", p.ReferenceID,
		"customer_id", p.CustomerID,
		"limit", limitValue(p.Limit),
		"after_id", p.AfterID,
		"before_id", p.BeforeID,
		"created_gte", p.CreatedGte,
		"created_lte", p.CreatedLte,
		"updated_gte", p.UpdatedGte,
		"updated_lte", p.UpdatedLte,
	)
}

// PaymentMethodList is one page of payment methods.
type PaymentMethodList struct {
	Data    []PaymentMethod
	HasMore bool
}

// List fetches a page of payment methods.
func (s *PaymentMethodsService) List(ctx context.Context, params ListPaymentMethodsParams) (PaymentMethodList, error) {
	response, err := s.client.Get(ctx, "/v2/payment_methods", params.query(), nil)
	if err != nil {
		return PaymentMethodList{}, err
	}

	list := PaymentMethodList{
		Data:    []PaymentMethod{},
		HasMore: listHasMore(response),
	}
	for _, entry := range listData(response) {
		list.Data = append(list.Data, NewPaymentMethod(asAttrs(entry)))
	}
	return list, nil
}

// UpdatePaymentMethodParams are the parameters for
// PaymentMethodsService.Update. Only the listed fields can be updated.
type UpdatePaymentMethodParams struct {
	ReferenceID    string
	Description    string
	Status         string
	Reusability    string
	OverTheCounter map[string]any
	VirtualAccount map[string]any

	IdempotencyKey string
	ForUserID      string
}

func (p *UpdatePaymentMethodParams) body() map[string]any {
	body := map[string]any{}
	putString(body, "reference_id", p.ReferenceID)
	putString(body, "description", p.Description)
	putString(body, "status", p.Status)
	putString(body, "reusability", p.Reusability)
	putMap(body, "over_the_counter", p.OverTheCounter)
	putMap(body, "virtual_account", p.VirtualAccount)
	return body
}

// Update patches a payment method.
func (s *PaymentMethodsService) Update(ctx context.Context, id string, params UpdatePaymentMethodParams) (PaymentMethod, error) {
	response, err := s.client.Patch(ctx, "/v2/payment_methods/"+id, params.body(), baseHeaders(params.IdempotencyKey, params.ForUserID))
	if err != nil {
		return PaymentMethod{}, err
	}
	return NewPaymentMethod(response), nil
}

// ExpirePaymentMethodParams are the parameters for
// PaymentMethodsService.Expire. The return URLs are sent as query parameters
// rather than a body; some bank channels require them.
type ExpirePaymentMethodParams struct {
	SuccessReturnURL string
	FailureReturnURL string

	IdempotencyKey string
	ForUserID      string
}

// Expire invalidates a payment method so it can no longer be charged.
func (s *PaymentMethodsService) Expire(ctx context.Context, id string, params ExpirePaymentMethodParams) (PaymentMethod, error) {
	path := "/v2/payment_methods/" + id + "/expire"

	query := url.Values{}
	if params.SuccessReturnURL != "" {
		query.Set("success_return_url", params.SuccessReturnURL)
	}
	if params.FailureReturnURL != "" {
		query.Set("failure_return_url", params.FailureReturnURL)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	response, err := s.client.Post(ctx, path, map[string]any{}, baseHeaders(params.IdempotencyKey, params.ForUserID))
	if err != nil {
		return PaymentMethod{}, err
	}
	return NewPaymentMethod(response), nil
}

// Authorize completes account linking with the auth code delivered to the
// customer. headers are forwarded verbatim.
func (s *PaymentMethodsService) Authorize(ctx context.Context, id, authCode string, headers map[string]string) (PaymentMethod, error) {
	if authCode == "" {
		return PaymentMethod{}, newValidationError("auth_code is required")
	}

	body := map[string]any{"auth_code": authCode}
	response, err := s.client.Post(ctx, "/v2/payment_methods/"+id+"/auth", body, headers)
	if err != nil {
		return PaymentMethod{}, err
	}
	return NewPaymentMethod(response), nil
}
