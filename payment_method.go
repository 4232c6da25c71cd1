package xendit

// Payment method types.
const (
	PaymentMethodTypeCard           = "CARD"
	PaymentMethodTypeEWallet        = "EWALLET"
	PaymentMethodTypeDirectDebit    = "DIRECT_DEBIT"
	PaymentMethodTypeOverTheCounter = "OVER_THE_COUNTER"
	PaymentMethodTypeVirtualAccount = "VIRTUAL_ACCOUNT"
	PaymentMethodTypeQRCode         = "QR_CODE"
)

// Payment method reusability values.
const (
	ReusabilityOneTimeUse  = "ONE_TIME_USE"
	ReusabilityMultipleUse = "MULTIPLE_USE"
)

// Payment method statuses.
const (
	PaymentMethodStatusPending        = "PENDING"
	PaymentMethodStatusRequiresAction = "REQUIRES_ACTION"
	PaymentMethodStatusActive         = "ACTIVE"
	PaymentMethodStatusInactive       = "INACTIVE"
	PaymentMethodStatusExpired        = "EXPIRED"
	PaymentMethodStatusFailed         = "FAILED"
)

// channelCodeKeys maps a payment method type to the nested object carrying
// its channel code.
var channelCodeKeys = map[string]string{
	PaymentMethodTypeEWallet:        "ewallet",
	PaymentMethodTypeDirectDebit:    "direct_debit",
	PaymentMethodTypeOverTheCounter: "over_the_counter",
	PaymentMethodTypeVirtualAccount: "virtual_account",
	PaymentMethodTypeQRCode:         "qr_code",
}

// channelCodeOf dispatches on the type field of a payment-method shaped map
// and reads the channel code from the matching sub-object.
func channelCodeOf(attrs map[string]any) string {
	if attrs == nil {
		return ""
	}
	methodType, _ := attrs["type"].(string)
	if methodType == PaymentMethodTypeCard {
		return "CARD"
	}
	key, ok := channelCodeKeys[methodType]
	if !ok {
		return ""
	}
	sub, _ := attrs[key].(map[string]any)
	if sub == nil {
		return ""
	}
	code, _ := sub["channel_code"].(string)
	return code
}

// PaymentMethod is a reusable or single-use tokenized means of payment,
// optionally linked to a customer for reuse.
type PaymentMethod struct {
	Resource
}

// NewPaymentMethod wraps a decoded payment method response body.
func NewPaymentMethod(attrs map[string]any) PaymentMethod {
	return PaymentMethod{NewResource(attrs)}
}

func (pm PaymentMethod) ID() string          { return pm.getString("id") }
func (pm PaymentMethod) BusinessID() string  { return pm.getString("business_id") }
func (pm PaymentMethod) CustomerID() string  { return pm.getString("customer_id") }
func (pm PaymentMethod) ReferenceID() string { return pm.getString("reference_id") }
func (pm PaymentMethod) Type() string        { return pm.getString("type") }
func (pm PaymentMethod) Reusability() string { return pm.getString("reusability") }
func (pm PaymentMethod) Status() string      { return pm.getString("status") }
func (pm PaymentMethod) Country() string     { return pm.getString("country") }
func (pm PaymentMethod) Description() string { return pm.getString("description") }
func (pm PaymentMethod) FailureCode() string { return pm.getString("failure_code") }
func (pm PaymentMethod) Created() string     { return pm.getString("created") }
func (pm PaymentMethod) Updated() string     { return pm.getString("updated") }

// Metadata returns the caller-supplied metadata object, if any.
func (pm PaymentMethod) Metadata() map[string]any { return pm.getMap("metadata") }

// BillingInformation returns the billing information object, if any.
func (pm PaymentMethod) BillingInformation() map[string]any { return pm.getMap("billing_information") }

func (pm PaymentMethod) IsActive() bool       { return pm.Status() == PaymentMethodStatusActive }
func (pm PaymentMethod) IsInactive() bool     { return pm.Status() == PaymentMethodStatusInactive }
func (pm PaymentMethod) IsExpired() bool      { return pm.Status() == PaymentMethodStatusExpired }
func (pm PaymentMethod) IsFailed() bool       { return pm.Status() == PaymentMethodStatusFailed }
func (pm PaymentMethod) RequiresAction() bool { return pm.Status() == PaymentMethodStatusRequiresAction }

func (pm PaymentMethod) IsMultipleUse() bool { return pm.Reusability() == ReusabilityMultipleUse }
func (pm PaymentMethod) IsOneTimeUse() bool  { return pm.Reusability() == ReusabilityOneTimeUse }

// ActionFor returns the first entry in the actions list matching actionType,
// compared case-insensitively.
func (pm PaymentMethod) ActionFor(actionType string) (map[string]any, bool) {
	return pm.actionFor(actionType)
}

// ChannelCode reads the channel code from the type-specific sub-object.
// CARD methods yield the literal "CARD".
func (pm PaymentMethod) ChannelCode() string {
	return channelCodeOf(pm.attrs)
}

// Equal reports structural equality with another PaymentMethod.
func (pm PaymentMethod) Equal(other PaymentMethod) bool {
	return pm.equal(other.Resource)
}
