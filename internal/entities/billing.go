package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BillingKind discriminates the two billing shapes a customer can submit.
type BillingKind string

const (
	BillingPerson  BillingKind = "person"
	BillingCompany BillingKind = "company"
)

var ErrInvalidBilling = errors.New("invalid billing record")

// Billing is a tagged union: exactly one of Person/Company is set, matching
// Kind. It is captured at checkout, stored as JSON next to the order row and
// opaque to reconciliation.
type Billing struct {
	Kind    BillingKind
	Person  *PersonBilling
	Company *CompanyBilling
}

type PersonBilling struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZIP       string `json:"zip"`
	Country   string `json:"country"`
}

type CompanyBilling struct {
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	TaxOffice string `json:"tax_office"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZIP       string `json:"zip"`
	Country   string `json:"country"`
}

func (b Billing) Validate() error {
	switch b.Kind {
	case BillingPerson:
		if b.Person == nil || b.Company != nil {
			return fmt.Errorf("%w: person kind requires the person payload and nothing else", ErrInvalidBilling)
		}
	case BillingCompany:
		if b.Company == nil || b.Person != nil {
			return fmt.Errorf("%w: company kind requires the company payload and nothing else", ErrInvalidBilling)
		}
	case "":
		if b.Person != nil || b.Company != nil {
			return fmt.Errorf("%w: payload without kind", ErrInvalidBilling)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidBilling, b.Kind)
	}
	return nil
}

type billingJSON struct {
	Kind    BillingKind     `json:"kind"`
	Person  *PersonBilling  `json:"person,omitempty"`
	Company *CompanyBilling `json:"company,omitempty"`
}

func (b Billing) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	switch b.Kind {
	case BillingPerson:
		return json.Marshal(billingJSON{Kind: b.Kind, Person: b.Person})
	case BillingCompany:
		return json.Marshal(billingJSON{Kind: b.Kind, Company: b.Company})
	default:
		// empty billing is allowed, customers may check out without it
		return []byte("null"), nil
	}
}

func (b *Billing) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = Billing{}
		return nil
	}
	var raw billingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBilling, err)
	}
	parsed := Billing{Kind: raw.Kind, Person: raw.Person, Company: raw.Company}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*b = parsed
	return nil
}
