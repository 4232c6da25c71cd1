package xendit

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentMethod(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{
		"id":     "pm-1",
		"type":   "EWALLET",
		"status": "PENDING",
	}}
	svc := &PaymentMethodsService{client: fake}

	pm, err := svc.Create(context.Background(), CreatePaymentMethodParams{
		PaymentMethodParams: PaymentMethodParams{
			Type:        PaymentMethodTypeEWallet,
			Reusability: ReusabilityOneTimeUse,
			ReferenceID: "ref-1",
			EWallet: map[string]any{
				"channel_code": "OVO",
				"channel_properties": map[string]any{
					"success_return_url": "https://x.co/success",
				},
			},
		},
		Country:        "ID",
		IdempotencyKey: "idem-1",
		ForUserID:      "sub-account-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-1", pm.ID())

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "POST", call.method)
	assert.Equal(t, "/v2/payment_methods", call.path)
	assert.Equal(t, map[string]string{
		"idempotency-key": "idem-1",
		"for-user-id":     "sub-account-1",
	}, call.headers)
	assert.Equal(t, "EWALLET", call.body["type"])
	assert.Equal(t, "ONE_TIME_USE", call.body["reusability"])
	assert.Equal(t, "ID", call.body["country"])
	assert.NotContains(t, call.body, "customer_id")
	assert.NotContains(t, call.body, "description")
}

func TestCreatePaymentMethodValidation(t *testing.T) {
	tests := []struct {
		name        string
		params      CreatePaymentMethodParams
		wantMessage string
	}{
		{
			name:        "missing type and reusability",
			params:      CreatePaymentMethodParams{},
			wantMessage: "Missing required parameters: type, reusability",
		},
		{
			name: "missing reusability",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{Type: "EWALLET"},
			},
			wantMessage: "reusability is required",
		},
		{
			name: "invalid type",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{Type: "CASH", Reusability: "ONE_TIME_USE"},
			},
			wantMessage: "type must be one of: CARD, EWALLET, DIRECT_DEBIT, OVER_THE_COUNTER, VIRTUAL_ACCOUNT, QR_CODE, got: CASH",
		},
		{
			name: "invalid reusability",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{Type: "EWALLET", Reusability: "FOREVER"},
			},
			wantMessage: "reusability must be one of: ONE_TIME_USE, MULTIPLE_USE, got: FOREVER",
		},
		{
			name: "direct debit requires customer",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{
					Type:        "DIRECT_DEBIT",
					Reusability: "MULTIPLE_USE",
					DirectDebit: map[string]any{"channel_code": "BPI"},
				},
			},
			wantMessage: "customer_id or customer object is required",
		},
		{
			name: "reusable ewallet requires customer",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{
					Type:        "EWALLET",
					Reusability: "MULTIPLE_USE",
					EWallet:     map[string]any{"channel_code": "OVO"},
				},
			},
			wantMessage: "customer_id or customer object is required",
		},
		{
			name: "direct debit object required",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{
					Type:        "DIRECT_DEBIT",
					Reusability: "MULTIPLE_USE",
				},
				CustomerID: "cust-1",
			},
			wantMessage: "direct_debit is required",
		},
		{
			name: "qr code object required",
			params: CreatePaymentMethodParams{
				PaymentMethodParams: PaymentMethodParams{
					Type:        "QR_CODE",
					Reusability: "ONE_TIME_USE",
				},
			},
			wantMessage: "qr_code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequester{}
			svc := &PaymentMethodsService{client: fake}

			_, err := svc.Create(context.Background(), tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestCreatePaymentMethodEmbeddedCustomerSatisfiesRequirement(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-2"}}
	svc := &PaymentMethodsService{client: fake}

	_, err := svc.Create(context.Background(), CreatePaymentMethodParams{
		PaymentMethodParams: PaymentMethodParams{
			Type:        PaymentMethodTypeDirectDebit,
			Reusability: ReusabilityMultipleUse,
			DirectDebit: map[string]any{"channel_code": "BPI"},
		},
		Customer: &CustomerParams{
			ReferenceID: "ref-1",
			Type:        CustomerTypeIndividual,
			IndividualDetail: &IndividualDetail{
				GivenNames: "Jane",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)

	customer, ok := fake.calls[0].body["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ref-1", customer["reference_id"])
	assert.Equal(t, map[string]any{"given_names": "Jane"}, customer["individual_detail"])
}

func TestGetPaymentMethodForwardsHeadersVerbatim(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-1"}}
	svc := &PaymentMethodsService{client: fake}

	headers := map[string]string{"for-user-id": "sub-1", "x-custom-trace": "abc"}
	_, err := svc.Get(context.Background(), "pm-1", headers)
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "/v2/payment_methods/pm-1", fake.calls[0].path)
	assert.Equal(t, headers, fake.calls[0].headers)
}

func TestListPaymentMethods(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{
		"data": []any{
			map[string]any{"id": "pm-1", "status": "ACTIVE"},
			map[string]any{"id": "pm-2", "status": "EXPIRED"},
		},
		"has_more": true,
	}}
	svc := &PaymentMethodsService{client: fake}

	list, err := svc.List(context.Background(), ListPaymentMethodsParams{
		Type:       "EWALLET",
		CustomerID: "cust-1",
		Limit:      10,
		CreatedGte: "2024-01-01",
		CreatedLte: "2024-01-31",
	})
	require.NoError(t, err)
	assert.True(t, list.HasMore)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "pm-1", list.Data[0].ID())

	require.Len(t, fake.calls, 1)
	query := fake.calls[0].query
	assert.Equal(t, "EWALLET", query.Get("type"))
	assert.Equal(t, "cust-1", query.Get("customer_id"))
	assert.Equal(t, "10", query.Get("limit"))
	assert.Equal(t, "2024-01-01", query.Get("created[gte]"))
	assert.Equal(t, "2024-01-31", query.Get("created[lte]"))
	assert.Empty(t, query.Get("created_gte"))
	assert.Empty(t, query.Get("created_lte"))
}

func TestListPaymentMethodsDefaults(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{}}
	svc := &PaymentMethodsService{client: fake}

	list, err := svc.List(context.Background(), ListPaymentMethodsParams{})
	require.NoError(t, err)
	assert.False(t, list.HasMore)
	assert.Empty(t, list.Data)
	assert.NotNil(t, list.Data)
}

func TestUpdatePaymentMethod(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-1", "status": "INACTIVE"}}
	svc := &PaymentMethodsService{client: fake}

	pm, err := svc.Update(context.Background(), "pm-1", UpdatePaymentMethodParams{
		Status:      "INACTIVE",
		Description: "disabled",
	})
	require.NoError(t, err)
	assert.True(t, pm.IsInactive())

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "PATCH", call.method)
	assert.Equal(t, "/v2/payment_methods/pm-1", call.path)
	assert.Equal(t, map[string]any{
		"status":      "INACTIVE",
		"description": "disabled",
	}, call.body)
}

func TestExpirePaymentMethodEncodesReturnURLs(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-1", "status": "EXPIRED"}}
	svc := &PaymentMethodsService{client: fake}

	pm, err := svc.Expire(context.Background(), "pm-1", ExpirePaymentMethodParams{
		SuccessReturnURL: "https://x.com/s",
	})
	require.NoError(t, err)
	assert.True(t, pm.IsExpired())

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "POST", call.method)
	assert.True(t, strings.HasPrefix(call.path, "/v2/payment_methods/pm-1/expire"))
	assert.True(t, strings.HasSuffix(call.path, "?success_return_url=https%3A%2F%2Fx.com%2Fs"))
	assert.Empty(t, call.body)
}

func TestExpirePaymentMethodWithoutURLs(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-1"}}
	svc := &PaymentMethodsService{client: fake}

	_, err := svc.Expire(context.Background(), "pm-1", ExpirePaymentMethodParams{})
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "/v2/payment_methods/pm-1/expire", fake.calls[0].path)
}

func TestAuthorizePaymentMethod(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{"id": "pm-1", "status": "ACTIVE"}}
	svc := &PaymentMethodsService{client: fake}

	pm, err := svc.Authorize(context.Background(), "pm-1", "123456", nil)
	require.NoError(t, err)
	assert.True(t, pm.IsActive())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "/v2/payment_methods/pm-1/auth", fake.calls[0].path)
	assert.Equal(t, map[string]any{"auth_code": "123456"}, fake.calls[0].body)
}

func TestAuthorizePaymentMethodRequiresAuthCode(t *testing.T) {
	fake := &fakeRequester{}
	svc := &PaymentMethodsService{client: fake}

	_, err := svc.Authorize(context.Background(), "pm-1", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "auth_code is required")
	assert.Empty(t, fake.calls)
}
