// Package address parses a person's free-text address into an immutable value
// with four typed segments: block, street, unit and postal code.
package address

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/dukerupert/addressbook/internal/domain"
)

const (
	// Example is a well-formed address.
	Example = "123, Clementi Ave 3, #12-34, 231534"

	// MessageConstraints is shown to users when an address is rejected.
	MessageConstraints = "Person addresses can only be entered in the format: " +
		"a/BLOCK, STREET, UNIT, POSTAL_CODE"

	// ValidationPattern is the shape IsValidAddress enforces, written as a
	// regular expression that must match the whole trimmed input.
	ValidationPattern = ".+,.+,.+,.+"
)

// ErrInvalidAddress is returned by New when the input does not have the
// BLOCK, STREET, UNIT, POSTAL_CODE shape.
var ErrInvalidAddress = &domain.Error{
	Code:    domain.EINVALID,
	Message: MessageConstraints,
}

// Address is a validated person address. The zero value is not a valid
// address; use New.
//
// Address values are immutable and safe to share between goroutines.
type Address struct {
	block      Block
	street     Street
	unit       Unit
	postalCode PostalCode
	value      string
	private    bool
}

// New trims raw, checks its shape and splits it into segments.
// Text after the fourth comma is dropped from the segments but kept in Value.
// On failure it returns the zero Address and ErrInvalidAddress.
func New(raw string, isPrivate bool) (Address, error) {
	trimmed := trim(raw)
	if !IsValidAddress(trimmed) {
		return Address{}, ErrInvalidAddress
	}

	segments := Segments(trimmed)
	if len(segments) < segmentCount {
		return Address{}, ErrInvalidAddress
	}

	return Address{
		block:      NewBlock(segments[blockIndex]),
		street:     NewStreet(segments[streetIndex]),
		unit:       NewUnit(segments[unitIndex]),
		postalCode: NewPostalCode(segments[postalCodeIndex]),
		value:      trimmed,
		private:    isPrivate,
	}, nil
}

func (a Address) Block() Block           { return a.block }
func (a Address) Street() Street         { return a.street }
func (a Address) Unit() Unit             { return a.unit }
func (a Address) PostalCode() PostalCode { return a.postalCode }

// Value returns the trimmed input the address was built from.
func (a Address) Value() string {
	return a.value
}

// String returns Value.
func (a Address) String() string {
	return a.value
}

// IsPrivate returns the flag given to New. It plays no part in equality.
func (a Address) IsPrivate() bool {
	return a.private
}

// IsZero reports whether a was not produced by a successful New.
func (a Address) IsZero() bool {
	return a.value == ""
}

// Components joins the four trimmed segments with bare commas.
// It differs from Value whenever the input had spaces around commas or
// text after the fourth comma.
func (a Address) Components() string {
	return a.block.Name() + "," + a.street.Name() + "," +
		a.unit.Name() + "," + a.postalCode.PostalCode()
}

// Fields returns the four segments in input order.
func (a Address) Fields() [segmentCount]Field {
	return [segmentCount]Field{a.block, a.street, a.unit, a.postalCode}
}

// Equal reports whether both addresses were built from the same trimmed text.
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}

// Hash is derived from Value, so equal addresses hash alike.
func (a Address) Hash() uint64 {
	return xxhash.Sum64String(a.value)
}

// MarshalText implements encoding.TextMarshaler using Value.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

// MarshalJSON encodes the address as a JSON string of Value.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// Field is implemented by Block, Street, Unit and PostalCode.
type Field interface {
	Name() string
	Kind() Kind
	IsBlank() bool
}
