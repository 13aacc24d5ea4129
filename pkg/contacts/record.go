// Package contacts holds contact records and the address book that owns them.
package contacts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/entrhq/assistant/pkg/fields"
)

var (
	// ErrNotFound is returned when no contact exists under the given name.
	ErrNotFound = errors.New("contact not found")

	// ErrPhoneNotFound is returned when a record does not hold the given phone.
	ErrPhoneNotFound = errors.New("phone not found")
)

// Record aggregates everything known about one person.
type Record struct {
	Name     fields.Name
	Phones   []fields.Phone
	Birthday *fields.Birthday
	Email    *fields.Email
	Address  *fields.Address
}

// NewRecord creates a record with a validated name and no other fields.
func NewRecord(name string) (*Record, error) {
	n, err := fields.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

// AddPhone validates and appends a phone. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := fields.NewPhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone drops the first occurrence of phone.
func (r *Record) RemovePhone(phone string) error {
	i := r.indexOf(phone)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// EditPhone replaces the first occurrence of old with replacement. The
// replacement is validated before anything changes.
func (r *Record) EditPhone(old, replacement string) error {
	phone, err := fields.NewPhone(replacement)
	if err != nil {
		return err
	}
	i := r.indexOf(old)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.Phones[i] = phone
	return nil
}

// FindPhone reports whether the record holds phone.
func (r *Record) FindPhone(phone string) (fields.Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return fields.Phone{}, false
	}
	return r.Phones[i], true
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.Phones {
		if p.String() == phone {
			return i
		}
	}
	return -1
}

// SetBirthday validates raw and overwrites any previous birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := fields.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// SetEmail validates raw and overwrites any previous email.
func (r *Record) SetEmail(raw string) error {
	e, err := fields.NewEmail(raw)
	if err != nil {
		return err
	}
	r.Email = &e
	return nil
}

// SetAddress validates raw and overwrites any previous address.
func (r *Record) SetAddress(raw string) error {
	a, err := fields.NewAddress(raw)
	if err != nil {
		return err
	}
	r.Address = &a
	return nil
}

// PhoneList joins the record's phones with "; ".
func (r *Record) PhoneList() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	return strings.Join(phones, "; ")
}

// Summary renders every field, using placeholders for the ones not set.
func (r *Record) Summary() string {
	email, address, birthday := "no email", "no address", "no birthday"
	if r.Email != nil {
		email = r.Email.String()
	}
	if r.Address != nil {
		address = r.Address.String()
	}
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, email: %s, address: %s, birthday: %s",
		r.Name, r.PhoneList(), email, address, birthday)
}

func (r *Record) String() string {
	return r.Summary()
}
