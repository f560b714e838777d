package address

// Kind identifies which of the four address segments a field holds.
type Kind int

const (
	KindBlock Kind = iota
	KindStreet
	KindUnit
	KindPostalCode
)

// String returns the field name used in validation errors and metrics.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindStreet:
		return "street"
	case KindUnit:
		return "unit"
	case KindPostalCode:
		return "postal_code"
	default:
		return "unknown"
	}
}

// field is the shared body of the four segment types.
// name is always the trimmed segment text and is never changed after construction.
type field struct {
	kind Kind
	name string
}

func newField(kind Kind, raw string) field {
	return field{kind: kind, name: trim(raw)}
}

// Name returns the trimmed segment text.
func (f field) Name() string {
	return f.name
}

// Kind returns which segment this field was built from.
func (f field) Kind() Kind {
	return f.kind
}

// IsBlank reports whether the segment trimmed down to nothing.
func (f field) IsBlank() bool {
	return f.name == ""
}

// Block is the first segment of an address, e.g. "123".
type Block struct{ field }

// NewBlock trims raw and wraps it. It never fails.
func NewBlock(raw string) Block {
	return Block{newField(KindBlock, raw)}
}

// Street is the second segment of an address, e.g. "Clementi Ave 3".
type Street struct{ field }

// NewStreet trims raw and wraps it. It never fails.
func NewStreet(raw string) Street {
	return Street{newField(KindStreet, raw)}
}

// Unit is the third segment of an address, e.g. "#12-34".
type Unit struct{ field }

// NewUnit trims raw and wraps it. It never fails.
func NewUnit(raw string) Unit {
	return Unit{newField(KindUnit, raw)}
}

// PostalCode is the fourth segment of an address, e.g. "231534".
// No digit or length rules are applied.
type PostalCode struct{ field }

// NewPostalCode trims raw and wraps it. It never fails.
func NewPostalCode(raw string) PostalCode {
	return PostalCode{newField(KindPostalCode, raw)}
}

// PostalCode is a synonym for Name.
func (p PostalCode) PostalCode() string {
	return p.name
}
