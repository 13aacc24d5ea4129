// Package fields provides the validated values a contact record is built from.
//
// Every value is constructed through a New* function that runs the field's
// format check. Construction either returns a normalized value or a
// *ValidationError whose message can be shown to the user as is. Values are
// immutable: editing a field means constructing a new value and assigning it
// only when construction succeeded.
package fields

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalid is matched by every *ValidationError via errors.Is.
var ErrInvalid = errors.New("invalid value")

// ValidationError reports a value that failed its format rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalid) hold for any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Invalid builds a ValidationError with the given user-facing message.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// Check validates a raw string and returns its normalized form.
type Check func(raw string) (string, error)

// Value is a validated string. The zero Value is empty and never produced by
// a successful constructor.
type Value struct {
	value string
}

// New runs check against raw and wraps the normalized result.
func New(raw string, check Check) (Value, error) {
	v, err := check(raw)
	if err != nil {
		return Value{}, err
	}
	return Value{value: v}, nil
}

func (v Value) String() string { return v.value }
func (v Value) IsZero() bool   { return v.value == "" }

// Name is a contact name; it is also the contact's key in the address book.
type Name struct{ Value }

// Phone is a ten digit phone number.
type Phone struct{ Value }

// Email is a lower-cased email address.
type Email struct{ Value }

// Address is a free-form postal address.
type Address struct{ Value }

const (
	msgNameEmpty    = "Name cannot be empty."
	msgPhoneFormat  = "Invalid phone number format. Phone must contain exactly 10 digits."
	msgEmailFormat  = "Invalid email format. Email must match pattern: user@example.com"
	msgAddressEmpty = "Address cannot be empty."
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NonEmpty returns a Check that trims raw and rejects the empty result.
func NonEmpty(message string) Check {
	return func(raw string) (string, error) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", Invalid(message)
		}
		return trimmed, nil
	}
}

func checkPhone(raw string) (string, error) {
	if len(raw) != 10 {
		return "", Invalid(msgPhoneFormat)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", Invalid(msgPhoneFormat)
		}
	}
	return raw, nil
}

func checkEmail(raw string) (string, error) {
	if !emailPattern.MatchString(raw) {
		return "", Invalid(msgEmailFormat)
	}
	return strings.ToLower(raw), nil
}

// NewName validates a contact name. Surrounding whitespace is trimmed.
func NewName(raw string) (Name, error) {
	v, err := New(raw, NonEmpty(msgNameEmpty))
	return Name{v}, err
}

// NewPhone validates a phone number of exactly ten decimal digits.
func NewPhone(raw string) (Phone, error) {
	v, err := New(raw, checkPhone)
	return Phone{v}, err
}

// NewEmail validates an email address and lower-cases it.
func NewEmail(raw string) (Email, error) {
	v, err := New(raw, checkEmail)
	return Email{v}, err
}

// NewAddress validates a postal address. Surrounding whitespace is trimmed.
func NewAddress(raw string) (Address, error) {
	v, err := New(raw, NonEmpty(msgAddressEmpty))
	return Address{v}, err
}

// MustPhone creates a Phone, panicking on invalid input. Use only in tests.
func MustPhone(raw string) Phone {
	p, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}
