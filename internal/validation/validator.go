package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgBlank        = "This field cannot be blank."
	MsgInvalidEmail = "Enter a valid email address."
	MsgInvalidPhone = "Phone must be in +1234567890 or 123-456-7890 format."

	MsgPriceNotPositive = "Price must be positive"
	MsgPricePrecision   = "Price cannot have more than 2 decimal places"
	MsgPriceTooLarge    = "Price cannot have more than 10 digits in total"
	MsgNegativeStock    = "Stock cannot be negative"
	MsgProductNameBlank = "Name is required"
)

var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// maxPrice is the first value a decimal(10,2) column cannot hold.
var maxPrice = decimal.New(1, 8)

// customerFields mirrors the customers table constraints.
type customerFields struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,max=254,email"`
	Phone string `json:"phone" validate:"omitempty,max=20,phone"`
}

type Engine struct {
	validate *validator.Validate
}

func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Engine{validate: v}
}

// ValidateCustomer returns nil or a FieldErrors describing every failed rule.
func (e *Engine) ValidateCustomer(name, email string, phone *string) error {
	in := customerFields{Name: name, Email: email}
	if phone != nil {
		in.Phone = *phone
	}

	err := e.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := FieldErrors{}
	for _, ve := range verrs {
		fe.Add(ve.Field(), messageFor(ve))
	}
	return fe
}

// ValidateProduct checks price and stock and returns the stock to persist,
// 0 when none was given.
func (e *Engine) ValidateProduct(name string, price decimal.Decimal, stock *int) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, MsgProductNameBlank)
	}
	if !price.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, MsgPriceNotPositive)
	}
	// the column keeps cents; anything finer would be rounded by the store
	if !price.Equal(price.Round(2)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, MsgPricePrecision)
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, MsgPriceTooLarge)
	}

	s := 0
	if stock != nil {
		s = *stock
	}
	if s < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, MsgNegativeStock)
	}
	return s, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgBlank
	case "email":
		return MsgInvalidEmail
	case "phone":
		return MsgInvalidPhone
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Failed the %q rule.", fe.Tag())
	}
}
