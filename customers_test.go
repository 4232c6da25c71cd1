package xendit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerIndividual(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{
		"id":           "cust-1",
		"reference_id": "ref-1",
		"type":         "INDIVIDUAL",
	}}
	svc := &CustomersService{client: fake}

	customer, err := svc.Create(context.Background(), CreateCustomerParams{
		ReferenceID: "ref-1",
		Type:        CustomerTypeIndividual,
		Email:       "jane@example.com",
		IndividualDetail: &IndividualDetail{
			GivenNames: "Jane",
			Surname:    "Doe",
		},
		IdempotencyKey: "idem-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID())
	assert.True(t, customer.IsIndividual())

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "POST", call.method)
	assert.Equal(t, "/customers", call.path)
	assert.Equal(t, map[string]string{"idempotency-key": "idem-1"}, call.headers)

	// Whitelisted body only; absent optional fields are omitted entirely.
	assert.Equal(t, map[string]any{
		"reference_id": "ref-1",
		"type":         "INDIVIDUAL",
		"email":        "jane@example.com",
		"individual_detail": map[string]any{
			"given_names": "Jane",
			"surname":     "Doe",
		},
	}, call.body)
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name        string
		params      CreateCustomerParams
		wantMessage string
	}{
		{
			name:        "missing both required fields",
			params:      CreateCustomerParams{},
			wantMessage: "Missing required parameters: reference_id, type",
		},
		{
			name:        "missing only type",
			params:      CreateCustomerParams{ReferenceID: "ref-1"},
			wantMessage: "type is required",
		},
		{
			name:        "invalid type",
			params:      CreateCustomerParams{ReferenceID: "ref-1", Type: "ROBOT"},
			wantMessage: "type must be one of: INDIVIDUAL, BUSINESS, got: ROBOT",
		},
		{
			name:        "individual without detail",
			params:      CreateCustomerParams{ReferenceID: "ref-1", Type: "INDIVIDUAL"},
			wantMessage: "individual_detail is required for INDIVIDUAL type",
		},
		{
			name: "individual without given names",
			params: CreateCustomerParams{
				ReferenceID:      "ref-1",
				Type:             "INDIVIDUAL",
				IndividualDetail: &IndividualDetail{Surname: "Doe"},
			},
			wantMessage: "given_names is required in individual_detail",
		},
		{
			name: "invalid gender",
			params: CreateCustomerParams{
				ReferenceID:      "ref-1",
				Type:             "INDIVIDUAL",
				IndividualDetail: &IndividualDetail{GivenNames: "Jane", Gender: "UNKNOWN"},
			},
			wantMessage: "gender must be one of: MALE, FEMALE, OTHER, got: UNKNOWN",
		},
		{
			name:        "business without detail",
			params:      CreateCustomerParams{ReferenceID: "ref-1", Type: "BUSINESS"},
			wantMessage: "business_detail is required for BUSINESS type",
		},
		{
			name: "business missing name and type",
			params: CreateCustomerParams{
				ReferenceID:    "ref-1",
				Type:           "BUSINESS",
				BusinessDetail: &BusinessDetail{},
			},
			wantMessage: "Missing required parameters: business_name, business_type",
		},
		{
			name: "invalid business type",
			params: CreateCustomerParams{
				ReferenceID: "ref-1",
				Type:        "BUSINESS",
				BusinessDetail: &BusinessDetail{
					BusinessName: "Acme",
					BusinessType: "GARAGE_BAND",
				},
			},
			wantMessage: "business_type must be one of: CORPORATION, SOLE_PROPRIETOR, PARTNERSHIP, COOPERATIVE, TRUST, NON_PROFIT, GOVERNMENT, got: GARAGE_BAND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequester{}
			svc := &CustomersService{client: fake}

			_, err := svc.Create(context.Background(), tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMessage)

			// Validation fails before any transport call.
			assert.Empty(t, fake.calls)
		})
	}
}

func TestCreateCustomerBusiness(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "cust-2", "type": "BUSINESS"}}
	svc := &CustomersService{client: fake}

	customer, err := svc.Create(context.Background(), CreateCustomerParams{
		ReferenceID: "ref-2",
		Type:        CustomerTypeBusiness,
		BusinessDetail: &BusinessDetail{
			BusinessName: "Acme Corp",
			BusinessType: "CORPORATION",
			TradingName:  "Acme",
		},
	})
	require.NoError(t, err)
	assert.True(t, customer.IsBusiness())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, map[string]any{
		"business_name": "Acme Corp",
		"business_type": "CORPORATION",
		"trading_name":  "Acme",
	}, fake.calls[0].body["business_detail"])
}

func TestGetCustomer(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "cust-1"}}
	svc := &CustomersService{client: fake}

	customer, err := svc.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "GET", fake.calls[0].method)
	assert.Equal(t, "/customers/cust-1", fake.calls[0].path)
}
