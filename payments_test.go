package xendit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPaymentsByPaymentMethod(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{
		"data": []any{
			map[string]any{"id": "py-1", "status": "SUCCEEDED"},
			map[string]any{"id": "py-2", "status": "PENDING"},
		},
		"has_more": true,
		"links": []any{
			map[string]any{"href": "/v2/payment_methods/pm-1/payments?after_id=py-2", "rel": "next", "method": "GET"},
		},
	}}
	svc := &PaymentsService{client: fake}

	list, err := svc.ListByPaymentMethod(context.Background(), "pm-1", ListPaymentsParams{
		Status:     "SUCCEEDED",
		Limit:      25,
		CreatedGte: "2024-01-01",
	})
	require.NoError(t, err)
	assert.True(t, list.HasMore)
	require.Len(t, list.Data, 2)
	assert.True(t, list.Data[0].IsSuccessful())
	require.Len(t, list.Links, 1)
	assert.Equal(t, "next", list.Links[0].Rel)

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "/v2/payment_methods/pm-1/payments", call.path)
	assert.Equal(t, "SUCCEEDED", call.query.Get("status"))
	assert.Equal(t, "25", call.query.Get("limit"))
	assert.Equal(t, "2024-01-01", call.query.Get("created[gte]"))
}

func TestListPaymentsDefaults(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{}}
	svc := &PaymentsService{client: fake}

	list, err := svc.ListByPaymentMethod(context.Background(), "pm-1", ListPaymentsParams{})
	require.NoError(t, err)
	assert.False(t, list.HasMore)
	assert.Empty(t, list.Data)
	assert.NotNil(t, list.Data)
	assert.Nil(t, list.Links)
}

func TestSimulate(t *testing.T) {
	fake := &fakeRequester{response: map[string]any{
		"status":  "PENDING",
		"message": "Payment simulation is in progress",
	}}
	svc := &PaymentsService{client: fake}

	result, err := svc.Simulate(context.Background(), "pm-1", 10000)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.Status)
	assert.Equal(t, "Payment simulation is in progress", result.Message)

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "POST", call.method)
	assert.Equal(t, "/v2/payment_methods/pm-1/payments/simulate", call.path)
	assert.Equal(t, map[string]any{"amount": float64(10000)}, call.body)
}

func TestSimulateRequiresAmount(t *testing.T) {
	fake := &fakeRequester{}
	svc := &PaymentsService{client: fake}

	_, err := svc.Simulate(context.Background(), "pm-1", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "amount is required")
	assert.Empty(t, fake.calls)
}
