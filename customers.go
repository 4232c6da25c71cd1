package xendit

import "context"

// CustomersService issues requests against /customers.
type CustomersService struct {
	client Requester
}

// CreateCustomerParams are the parameters for CustomersService.Create.
// ReferenceID and Type are required; Type selects which detail object must be
// populated.
type CreateCustomerParams struct {
	ReferenceID      string
	Type             string
	Email            string
	MobileNumber     string
	IndividualDetail *IndividualDetail
	BusinessDetail   *BusinessDetail

	// IdempotencyKey is sent as the idempotency-key header when set.
	IdempotencyKey string
}

func (p *CreateCustomerParams) validate() error {
	if err := checkRequired(
		requiredField{"reference_id", p.ReferenceID != ""},
		requiredField{"type", p.Type != ""},
	); err != nil {
		return err
	}
	if err := checkEnum("type", p.Type, customerTypes); err != nil {
		return err
	}

	switch p.Type {
	case CustomerTypeIndividual:
		if p.IndividualDetail == nil {
			return newValidationError("individual_detail is required for INDIVIDUAL type")
		}
		if p.IndividualDetail.GivenNames == "" {
			return newValidationError("given_names is required in individual_detail")
		}
		if err := checkEnum("gender", p.IndividualDetail.Gender, genders); err != nil {
			return err
		}
	case CustomerTypeBusiness:
		if p.BusinessDetail == nil {
			return newValidationError("business_detail is required for BUSINESS type")
		}
		if err := checkRequired(
			requiredField{"business_name", p.BusinessDetail.BusinessName != ""},
			requiredField{"business_type", p.BusinessDetail.BusinessType != ""},
		); err != nil {
			return err
		}
		if err := checkEnum("business_type", p.BusinessDetail.BusinessType, businessTypes); err != nil {
			return err
		}
	}
	return nil
}

func (p *CreateCustomerParams) body() map[string]any {
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

// Create registers a new customer.
func (s *CustomersService) Create(ctx context.Context, params CreateCustomerParams) (Customer, error) {
	if err := params.validate(); err != nil {
		return Customer{}, err
	}

	response, err := s.client.Post(ctx, "/customers", params.body(), baseHeaders(params.IdempotencyKey, ""))
	if err != nil {
		return Customer{}, err
	}
	return NewCustomer(response), nil
}

// Get fetches a customer by ID.
func (s *CustomersService) Get(ctx context.Context, id string) (Customer, error) {
	response, err := s.client.Get(ctx, "/customers/"+id, nil, nil)
	if err != nil {
		return Customer{}, err
	}
	return NewCustomer(response), nil
}
