package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBilling_Validate(t *testing.T) {
	person := &entities.PersonBilling{FirstName: "Alice", LastName: "Doe"}
	company := &entities.CompanyBilling{LegalName: "ACME GmbH", TaxID: "DE123456789"}

	testCases := []struct {
		name    string
		billing entities.Billing
		wantErr bool
	}{
		{name: "empty billing is allowed", billing: entities.Billing{}},
		{name: "person", billing: entities.Billing{Kind: entities.BillingPerson, Person: person}},
		{name: "company", billing: entities.Billing{Kind: entities.BillingCompany, Company: company}},
		{name: "person kind without payload", billing: entities.Billing{Kind: entities.BillingPerson}, wantErr: true},
		{name: "company kind without payload", billing: entities.Billing{Kind: entities.BillingCompany}, wantErr: true},
		{name: "person kind with company payload", billing: entities.Billing{Kind: entities.BillingPerson, Person: person, Company: company}, wantErr: true},
		{name: "payload without kind", billing: entities.Billing{Person: person}, wantErr: true},
		{name: "unknown kind", billing: entities.Billing{Kind: "government"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.billing.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidBilling)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("message names the offending kind", func(t *testing.T) {
		err := entities.Billing{Kind: entities.BillingPerson, Person: person, Company: company}.Validate()
		assert.ErrorContains(t, err, "person kind")

		err = entities.Billing{Kind: entities.BillingCompany, Person: person, Company: company}.Validate()
		assert.ErrorContains(t, err, "company kind")
	})
}

func TestBilling_JSON(t *testing.T) {
	t.Run("person round trip", func(t *testing.T) {
		in := entities.Billing{
			Kind: entities.BillingPerson,
			Person: &entities.PersonBilling{
				FirstName: "Alice",
				LastName:  "Doe",
				Address:   "Hauptstr. 1",
				City:      "Berlin",
				ZIP:       "10115",
				Country:   "DE",
			},
		}

		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "company")

		var out entities.Billing
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("company round trip", func(t *testing.T) {
		in := entities.Billing{
			Kind: entities.BillingCompany,
			Company: &entities.CompanyBilling{
				LegalName: "ACME GmbH",
				TaxID:     "DE123456789",
				TaxOffice: "Berlin Mitte",
				Country:   "DE",
			},
		}

		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "person")

		var out entities.Billing
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("empty billing marshals to null", func(t *testing.T) {
		data, err := json.Marshal(entities.Billing{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		var out entities.Billing
		require.NoError(t, json.Unmarshal([]byte("null"), &out))
		assert.Equal(t, entities.Billing{}, out)
	})

	t.Run("kind and payload must match", func(t *testing.T) {
		var out entities.Billing
		err := json.Unmarshal([]byte(`{"kind":"person","company":{"legal_name":"ACME"}}`), &out)
		assert.ErrorIs(t, err, entities.ErrInvalidBilling)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		var out entities.Billing
		err := json.Unmarshal([]byte(`{"kind":"government"}`), &out)
		assert.ErrorIs(t, err, entities.ErrInvalidBilling)
	})

	t.Run("invalid union never marshals", func(t *testing.T) {
		_, err := json.Marshal(entities.Billing{Kind: entities.BillingPerson})
		assert.Error(t, err)
	})
}
