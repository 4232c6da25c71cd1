package xendit

import (
	"context"
	"net/url"
)

// PaymentsService issues requests against the payments sub-resources of
// /v2/payment_methods.
type PaymentsService struct {
	client Requester
}

// ListPaymentsParams filter a payment listing. Zero values are omitted from
// the query.
type ListPaymentsParams struct {
	PaymentRequestID string
	ReferenceID      string
	Status           string
	Limit            int
	AfterID          string
	BeforeID         string
	CreatedGte       string
	CreatedLte       string
	UpdatedGte       string
	UpdatedLte       string
}

func (p *ListPaymentsParams) query() url.Values {
	return listQuery(
		"payment_request_id", p.PaymentRequestID,
		"reference_id", p.ReferenceID,
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

// PaymentList is one page of payments, with continuation links when the API
// provides them.
type PaymentList struct {
	Data    []Payment
	HasMore bool
	Links   []Link
}

// ListByPaymentMethod fetches a page of payments charged against one payment
// method.
func (s *PaymentsService) ListByPaymentMethod(ctx context.Context, paymentMethodID string, params ListPaymentsParams) (PaymentList, error) {
	path := "/v2/payment_methods/" + paymentMethodID + "/payments"
	response, err := s.client.Get(ctx, path, params.query(), nil)
	if err != nil {
		return PaymentList{}, err
	}

	list := PaymentList{
		Data:    []Payment{},
		HasMore: listHasMore(response),
		Links:   decodeLinks(response["links"]),
	}
	for _, entry := range listData(response) {
		list.Data = append(list.Data, NewPayment(asAttrs(entry)))
	}
	return list, nil
}

// SimulateResult is the reduced response of the simulate endpoint, which
// does not return a full payment resource.
type SimulateResult struct {
	Status  string
	Message string
}

// Simulate triggers a test-mode payment against a payment method. Amount is
// required.
func (s *PaymentsService) Simulate(ctx context.Context, paymentMethodID string, amount float64) (SimulateResult, error) {
	if amount == 0 {
		return SimulateResult{}, newValidationError("amount is required")
	}

	path := "/v2/payment_methods/" + paymentMethodID + "/payments/simulate"
	response, err := s.client.Post(ctx, path, map[string]any{"amount": amount}, nil)
	if err != nil {
		return SimulateResult{}, err
	}

	result := SimulateResult{}
	result.Status, _ = response["status"].(string)
	result.Message, _ = response["message"].(string)
	return result, nil
}
