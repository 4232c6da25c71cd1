// Package xendit is a client SDK for the Xendit payment-processing REST API.
// It wraps authenticated HTTP calls into typed request/response shapes,
// validates request parameters client-side before any network call, and maps
// API failures onto a typed error hierarchy.
package xendit

import (
	"time"

	"github.com/google/uuid"
)

// Default configuration values applied by NewClient.
const (
	DefaultBaseURL        = "https://api.xendit.co"
	DefaultTimeout        = 30 * time.Second
	DefaultConnectTimeout = 10 * time.Second
)

// Config holds client credentials and transport settings. APIKey is the only
// required field.
type Config struct {
	// APIKey is the Xendit secret API key, sent as the basic-auth username
	// with an empty password.
	APIKey string

	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds the full request/response round-trip. Defaults to
	// DefaultTimeout.
	Timeout time.Duration

	// ConnectTimeout bounds connection establishment. Defaults to
	// DefaultConnectTimeout.
	ConnectTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	return c
}

// Xendit bundles one transport client with a service per API resource.
// Construct it once and share it; all services are safe for concurrent use.
type Xendit struct {
	Customers       *CustomersService
	PaymentRequests *PaymentRequestsService
	PaymentMethods  *PaymentMethodsService
	Payments        *PaymentsService
	Refunds         *RefundsService
}

// New wires a Xendit container with a real HTTP transport. It returns an
// error matching ErrConfiguration if cfg has no API key.
func New(cfg Config) (*Xendit, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithRequester(client), nil
}

// NewWithRequester wires a Xendit container around an arbitrary transport,
// typically a test double.
func NewWithRequester(r Requester) *Xendit {
	return &Xendit{
		Customers:       &CustomersService{client: r},
		PaymentRequests: &PaymentRequestsService{client: r},
		PaymentMethods:  &PaymentMethodsService{client: r},
		Payments:        &PaymentsService{client: r},
		Refunds:         &RefundsService{client: r},
	}
}

// NewIdempotencyKey returns a fresh UUID suitable for the IdempotencyKey
// field on create requests.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
