package booking

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrInvalidEmail      = errors.New("invalid customer email")
)

const MaxNotesLength = 2000

// Customer is the contact information a visitor submits with a booking.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return Customer{}, ErrInvalidEmail
	}
	return Customer{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

// ReconstructCustomer rehydrates persisted contact data without re-running
// submission validation.
func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

type Notes struct {
	value string
}

var ErrNotesTooLong = errors.New("notes too long")

func NewNotes(value string) (Notes, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: value}, nil
}

func ReconstructNotes(value string) Notes {
	return Notes{value: value}
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }
