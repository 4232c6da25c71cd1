package xendit

// IndividualDetail identifies an INDIVIDUAL customer. GivenNames is required.
type IndividualDetail struct {
	GivenNames   string
	Surname      string
	Nationality  string
	PlaceOfBirth string
	DateOfBirth  string
	Gender       string
}

func (d *IndividualDetail) toBody() map[string]any {
	body := map[string]any{}
	putString(body, "given_names", d.GivenNames)
	putString(body, "surname", d.Surname)
	putString(body, "nationality", d.Nationality)
	putString(body, "place_of_birth", d.PlaceOfBirth)
	putString(body, "date_of_birth", d.DateOfBirth)
	putString(body, "gender", d.Gender)
	return body
}

// BusinessDetail identifies a BUSINESS customer. BusinessName and
// BusinessType are required.
type BusinessDetail struct {
	BusinessName       string
	TradingName        string
	BusinessType       string
	NatureOfBusiness   string
	BusinessDomicile   string
	DateOfRegistration string
}

func (d *BusinessDetail) toBody() map[string]any {
	body := map[string]any{}
	putString(body, "business_name", d.BusinessName)
	putString(body, "trading_name", d.TradingName)
	putString(body, "business_type", d.BusinessType)
	putString(body, "nature_of_business", d.NatureOfBusiness)
	putString(body, "business_domicile", d.BusinessDomicile)
	putString(body, "date_of_registration", d.DateOfRegistration)
	return body
}

// CustomerParams is a customer object embedded in payment method and payment
// request creation, as an alternative to referencing one by CustomerID.
type CustomerParams struct {
	ReferenceID      string
	Type             string
	Email            string
	MobileNumber     string
	IndividualDetail *IndividualDetail
	BusinessDetail   *BusinessDetail
}

func (p *CustomerParams) toBody() map[string]any {
	body := map[string]any{}
	putString(body, "reference_id", p.ReferenceID)
	putString(body, "type", p.Type)
	putString(body, "email", p.Email)
	putString(body, "mobile_number", p.MobileNumber)
	if p.IndividualDetail != nil {
		body["individual_detail"] = p.IndividualDetail.toBody()
	}
	if p.BusinessDetail != nil {
		body["business_detail"] = p.BusinessDetail.toBody()
	}
	return body
}

// PaymentMethodParams describes a payment method, either created standalone
// or embedded in a payment request. Exactly one type-specific object
// (EWallet, DirectDebit, ...) must match Type. The sub-objects carry
// channel-specific properties and are forwarded as-is.
type PaymentMethodParams struct {
	Type           string
	Reusability    string
	ReferenceID    string
	Description    string
	Metadata       map[string]any
	EWallet        map[string]any
	DirectDebit    map[string]any
	Card           map[string]any
	OverTheCounter map[string]any
	VirtualAccount map[string]any
	QRCode         map[string]any
}

func (p *PaymentMethodParams) toBody() map[string]any {
	body := map[string]any{}
	putString(body, "type", p.Type)
	putString(body, "reusability", p.Reusability)
	putString(body, "reference_id", p.ReferenceID)
	putString(body, "description", p.Description)
	putMap(body, "metadata", p.Metadata)
	p.putTypeObjects(body)
	return body
}

func (p *PaymentMethodParams) putTypeObjects(body map[string]any) {
	putMap(body, "ewallet", p.EWallet)
	putMap(body, "direct_debit", p.DirectDebit)
	putMap(body, "card", p.Card)
	putMap(body, "over_the_counter", p.OverTheCounter)
	putMap(body, "virtual_account", p.VirtualAccount)
	putMap(body, "qr_code", p.QRCode)
}

// typeObject returns the sub-object matching Type, with its wire name.
func (p *PaymentMethodParams) typeObject() (string, map[string]any) {
	switch p.Type {
	case PaymentMethodTypeEWallet:
		return "ewallet", p.EWallet
	case PaymentMethodTypeDirectDebit:
		return "direct_debit", p.DirectDebit
	case PaymentMethodTypeCard:
		return "card", p.Card
	case PaymentMethodTypeOverTheCounter:
		return "over_the_counter", p.OverTheCounter
	case PaymentMethodTypeVirtualAccount:
		return "virtual_account", p.VirtualAccount
	case PaymentMethodTypeQRCode:
		return "qr_code", p.QRCode
	default:
		return "", nil
	}
}

// validatePaymentMethodParams applies the ordered validation contract shared
// by payment method creation and embedded payment methods: required fields,
// enum membership, then type-specific object presence.
func validatePaymentMethodParams(p *PaymentMethodParams) error {
	if err := checkRequired(
		requiredField{"type", p.Type != ""},
		requiredField{"reusability", p.Reusability != ""},
	); err != nil {
		return err
	}
	if err := checkEnum("type", p.Type, paymentMethodTypes); err != nil {
		return err
	}
	if err := checkEnum("reusability", p.Reusability, reusabilities); err != nil {
		return err
	}
	if name, obj := p.typeObject(); name != "" && obj == nil {
		return newValidationError(name + " is required")
	}
	return nil
}

// requiresCustomer reports whether this payment method shape must reference a
// customer: direct debit always, e-wallets when reusable.
func (p *PaymentMethodParams) requiresCustomer() bool {
	if p.Type == PaymentMethodTypeDirectDebit {
		return true
	}
	return p.Type == PaymentMethodTypeEWallet && p.Reusability == ReusabilityMultipleUse
}
