package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type saveRecorder struct {
	calls []CustomerFormData
	err   error
}

func (r *saveRecorder) save(_ context.Context, data CustomerFormData) (*domain.Customer, error) {
	r.calls = append(r.calls, data)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Customer{Name: data.Name, Email: data.Email}, nil
}

func TestCustomerFormSubmitValid(t *testing.T) {
	rec := &saveRecorder{}
	form := NewCustomerForm(NewCustomerValidator(), rec.save, logger.Nop())
	form.Open(nil)

	form.Apply(CustomerFormInput{
		Name:          strPtr("Muster AG"),
		ContactPerson: strPtr("Anna Muster"),
		ContactGender: strPtr("female"),
		Email:         strPtr("anna@muster.ch"),
		Phone:         strPtr("+41 44 000 00 00"),
	})

	saved, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, rec.calls, 1)

	assert.Equal(t, CustomerFormData{
		Name:          "Muster AG",
		ContactPerson: "Anna Muster",
		ContactGender: "female",
		Email:         "anna@muster.ch",
		Phone:         "+41 44 000 00 00",
	}, rec.calls[0])
	assert.Equal(t, "Muster AG", saved.Name)
	assert.False(t, form.IsOpen())
}

func TestCustomerFormSubmitInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  CustomerFormInput
		fields []string
	}{
		{"empty form", CustomerFormInput{}, []string{"name", "email"}},
		{"bad email", CustomerFormInput{Name: strPtr("X"), Email: strPtr("not-an-email")}, []string{"email"}},
		{"no name", CustomerFormInput{Email: strPtr("a@b.ch")}, []string{"name"}},
		{"bad gender", CustomerFormInput{Name: strPtr("X"), Email: strPtr("a@b.ch"), ContactGender: strPtr("other")}, []string{"contactGender"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &saveRecorder{}
			form := NewCustomerForm(NewCustomerValidator(), rec.save, logger.Nop())
			form.Open(nil)
			form.Apply(tt.input)

			_, err := form.Submit(context.Background())

			var verr *e.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Len(t, verr.Fields, len(tt.fields))
			assert.Empty(t, rec.calls)
			assert.True(t, form.IsOpen())
		})
	}
}

func TestCustomerFormPrefillAndReset(t *testing.T) {
	gender := domain.GenderMale
	existing := &domain.Customer{
		Name:          "Beispiel GmbH",
		ContactPerson: strPtr("Hans"),
		ContactGender: &gender,
		Email:         "hans@beispiel.ch",
		TaxNumber:     strPtr("CHE-123.456.789"),
	}

	form := NewCustomerForm(NewCustomerValidator(), (&saveRecorder{}).save, logger.Nop())
	form.Open(existing)

	assert.True(t, form.Editing())
	assert.Equal(t, CustomerFormData{
		Name:          "Beispiel GmbH",
		ContactPerson: "Hans",
		ContactGender: "male",
		Email:         "hans@beispiel.ch",
		TaxNumber:     "CHE-123.456.789",
	}, form.Values())

	form.Close()
	form.Open(nil)

	assert.False(t, form.Editing())
	assert.Equal(t, CustomerFormData{}, form.Values())
}

func TestCustomerFormSaveFailureKeepsFormOpen(t *testing.T) {
	rec := &saveRecorder{err: errors.New("db down")}
	form := NewCustomerForm(NewCustomerValidator(), rec.save, logger.Nop())
	form.Open(nil)
	form.Apply(CustomerFormInput{Name: strPtr("X"), Email: strPtr("x@y.ch")})

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Len(t, rec.calls, 1)
	assert.True(t, form.IsOpen())
	assert.Equal(t, "X", form.Values().Name)
}

func TestCustomerFormClosed(t *testing.T) {
	rec := &saveRecorder{}
	form := NewCustomerForm(NewCustomerValidator(), rec.save, logger.Nop())

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrFormClosed)
	assert.Empty(t, rec.calls)
}

func TestApplyCustomerFormOptionalFields(t *testing.T) {
	c := &domain.Customer{Phone: strPtr("old")}

	applyCustomerForm(c, CustomerFormData{Name: "N", Email: "n@x.ch", ContactGender: "neutral"})

	assert.Nil(t, c.Phone)
	assert.Nil(t, c.ContactPerson)
	require.NotNil(t, c.ContactGender)
	assert.Equal(t, domain.GenderNeutral, *c.ContactGender)
}
