package xendit

// Customer types.
const (
	CustomerTypeIndividual = "INDIVIDUAL"
	CustomerTypeBusiness   = "BUSINESS"
)

// Customer is a payer identity that payment methods can be linked to.
type Customer struct {
	Resource
}

// NewCustomer wraps a decoded customer response body.
func NewCustomer(attrs map[string]any) Customer {
	return Customer{NewResource(attrs)}
}

func (c Customer) ID() string           { return c.getString("id") }
func (c Customer) ReferenceID() string  { return c.getString("reference_id") }
func (c Customer) Type() string         { return c.getString("type") }
func (c Customer) Email() string        { return c.getString("email") }
func (c Customer) MobileNumber() string { return c.getString("mobile_number") }
func (c Customer) Created() string      { return c.getString("created") }
func (c Customer) Updated() string      { return c.getString("updated") }

// IndividualDetail returns the individual detail object, if any.
func (c Customer) IndividualDetail() map[string]any { return c.getMap("individual_detail") }

// BusinessDetail returns the business detail object, if any.
func (c Customer) BusinessDetail() map[string]any { return c.getMap("business_detail") }

func (c Customer) IsIndividual() bool { return c.Type() == CustomerTypeIndividual }
func (c Customer) IsBusiness() bool   { return c.Type() == CustomerTypeBusiness }

// Equal reports structural equality with another Customer.
func (c Customer) Equal(other Customer) bool {
	return c.equal(other.Resource)
}
