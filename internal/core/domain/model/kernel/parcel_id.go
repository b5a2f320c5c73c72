package kernel

import (
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
)

// parcelIDPrefix tags every generated parcel identifier.
const parcelIDPrefix = "PKG-"

// ErrParcelIDIsNotConstructed indicates a ParcelID that was not created
// through NewParcelID or ParcelIDFromString.
var ErrParcelIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ParcelID must be created via NewParcelID or ParcelIDFromString",
)

// ParcelID is the unique identifier of a staged parcel order, rendered as
// "PKG-" followed by a UUID. The UUID token makes collisions practically
// impossible regardless of how many orders are staged in the same instant.
//
// ParcelID is immutable and safe for concurrent use. The zero value is
// invalid and fails Validate.
type ParcelID struct {
	value string
}

// NewParcelID generates a fresh identifier.
//
// Example:
//
//	id := kernel.NewParcelID()
//	fmt.Println(id) // e.g. "PKG-550e8400-e29b-41d4-a716-446655440000"
func NewParcelID() ParcelID {
	return ParcelID{value: parcelIDPrefix + uuid.NewString()}
}

// ParcelIDFromString reconstructs a ParcelID from its string form, typically
// when loading an order back from persistence. The value must carry the
// "PKG-" prefix followed by a valid UUID.
func ParcelIDFromString(s string) (ParcelID, error) {
	token, ok := strings.CutPrefix(s, parcelIDPrefix)
	if !ok {
		return ParcelID{}, errs.NewValueIsInvalidErrorWithCause(
			"parcel ID",
			fmt.Errorf("%q does not start with %q", s, parcelIDPrefix),
		)
	}
	if _, err := uuid.Parse(token); err != nil {
		return ParcelID{}, errs.NewValueIsInvalidErrorWithCause("parcel ID", err)
	}
	return ParcelID{value: s}, nil
}

// Validate ensures the ParcelID was created through a constructor.
func (id ParcelID) Validate() error {
	if id.value == "" {
		return ErrParcelIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two identifiers by value.
func (id ParcelID) IsEqual(other ParcelID) bool {
	return id.value == other.value
}

// String returns the full "PKG-..." identifier.
func (id ParcelID) String() string {
	return id.value
}
