package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

var ErrFormClosed = errors.New("customer form is not open")

// CustomerFormData — значения полей формы клиента.
type CustomerFormData struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	ContactGender string `json:"contactGender" validate:"omitempty,oneof=male female neutral"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxNumber     string `json:"taxNumber"`
}

// CustomerFormInput — изменения полей формы. nil оставляет текущее значение.
type CustomerFormInput struct {
	Name          *string
	ContactPerson *string
	ContactGender *string
	Email         *string
	Phone         *string
	Address       *string
	TaxNumber     *string
}

// SaveCustomerFunc сохраняет провалидированные значения формы.
type SaveCustomerFunc func(ctx context.Context, data CustomerFormData) (*domain.Customer, error)

// CustomerForm — форма создания/редактирования клиента.
type CustomerForm struct {
	validate *validator.Validate
	onSave   SaveCustomerFunc
	logger   logger.Logger

	open     bool
	customer *domain.Customer
	data     CustomerFormData
}

// NewCustomerValidator возвращает валидатор, который называет поля по json-тегам.
func NewCustomerValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func NewCustomerForm(validate *validator.Validate, onSave SaveCustomerFunc, logger logger.Logger) *CustomerForm {
	return &CustomerForm{
		validate: validate,
		onSave:   onSave,
		logger:   logger,
	}
}

// Open открывает форму. Для существующего клиента поля заполняются из записи,
// иначе сбрасываются в пустые значения.
func (f *CustomerForm) Open(customer *domain.Customer) {
	f.open = true
	f.customer = customer

	if customer == nil {
		f.data = CustomerFormData{}
		return
	}

	f.data = CustomerFormData{
		Name:          customer.Name,
		ContactPerson: deref(customer.ContactPerson),
		Email:         customer.Email,
		Phone:         deref(customer.Phone),
		Address:       deref(customer.Address),
		TaxNumber:     deref(customer.TaxNumber),
	}
	if customer.ContactGender != nil {
		f.data.ContactGender = string(*customer.ContactGender)
	}
}

func (f *CustomerForm) Close() {
	f.open = false
}

func (f *CustomerForm) IsOpen() bool {
	return f.open
}

// Editing сообщает, редактируется ли существующий клиент.
func (f *CustomerForm) Editing() bool {
	return f.customer != nil
}

func (f *CustomerForm) Values() CustomerFormData {
	return f.data
}

// Apply переносит присланные поля в форму.
func (f *CustomerForm) Apply(in CustomerFormInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&f.data.Name, in.Name)
	set(&f.data.ContactPerson, in.ContactPerson)
	set(&f.data.ContactGender, in.ContactGender)
	set(&f.data.Email, in.Email)
	set(&f.data.Phone, in.Phone)
	set(&f.data.Address, in.Address)
	set(&f.data.TaxNumber, in.TaxNumber)
}

// Validate проверяет обязательное имя и корректный email.
func (f *CustomerForm) Validate() error {
	err := f.validate.Struct(f.data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = customerFieldMessage(fe)
	}

	return e.NewValidationError(fields)
}

// Submit валидирует форму и вызывает onSave ровно один раз.
// При успехе форма закрывается, при ошибке сохранения остаётся открытой.
func (f *CustomerForm) Submit(ctx context.Context) (*domain.Customer, error) {
	if !f.open {
		return nil, ErrFormClosed
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	saved, err := f.onSave(ctx, f.data)
	if err != nil {
		f.logger.Errorf(err, "error saving customer")
		return nil, err
	}

	f.Close()
	return saved, nil
}

func customerFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "name is required"
	case "email":
		return "valid email address is required"
	case "contactGender":
		return "contact gender must be one of male, female, neutral"
	default:
		return fe.Error()
	}
}

// applyCustomerForm переносит значения формы в запись клиента. Пустые необязательные поля хранятся как NULL.
func applyCustomerForm(c *domain.Customer, data CustomerFormData) {
	c.Name = data.Name
	c.Email = data.Email
	c.ContactPerson = optional(data.ContactPerson)
	c.Phone = optional(data.Phone)
	c.Address = optional(data.Address)
	c.TaxNumber = optional(data.TaxNumber)

	c.ContactGender = nil
	if data.ContactGender != "" {
		g := domain.Gender(data.ContactGender)
		c.ContactGender = &g
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
