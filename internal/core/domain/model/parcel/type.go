package parcel

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Type classifies a parcel for the tariff. Documents are priced flat by zone;
// non-documents are priced by weight tier.
type Type int

const (
	// UnknownType represents an invalid or undefined parcel type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Document is flat-priced paperwork; weight is ignored even if supplied.
	Document

	// NonDocument is a weighed parcel priced by the tiered tariff.
	NonDocument
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Document:    "document",
		NonDocument: "non-document",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Document:    "document",
		NonDocument: "non-document",
	}
}

// ParseType converts the form value ("document", "non-document") to a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"parcel type", fmt.Errorf("%q is not a valid parcel type", s))
}

// Validate checks that the Type is one of the valid values.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcel type", fmt.Errorf("%d is not a valid parcel type", t))
	}
	return nil
}

// String returns the wire/form representation of the type.
// Implements fmt.Stringer and is safe on any value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
