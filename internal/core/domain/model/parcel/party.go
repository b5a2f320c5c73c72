package parcel

import (
	"errors"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a Party was not created through
// the NewParty constructor.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party holds one side of a shipment: who hands the parcel over or receives
// it, and where. The service center must belong to the stated region; that
// referential check needs the geography directory and therefore happens in
// Draft validation, not here.
//
// Party is an immutable value object with all fields required.
type Party struct {
	name            string
	contact         string
	regionID        string
	serviceCenterID string
	address         string
	instruction     string

	guard guard.ConstructorGuard
}

// NewParty creates a validated Party. Every field is required; the
// instruction is the pickup note for senders and the delivery note for
// receivers.
func NewParty(name, contact, regionID, serviceCenterID, address, instruction string) (Party, error) {
	if err := errors.Join(
		requireField("name", name),
		requireField("contact", contact),
		requireField("region", regionID),
		requireField("service center", serviceCenterID),
		requireField("address", address),
		requireField("instruction", instruction),
	); err != nil {
		return Party{}, err
	}

	return Party{
		name:            name,
		contact:         contact,
		regionID:        regionID,
		serviceCenterID: serviceCenterID,
		address:         address,
		instruction:     instruction,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func requireField(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// Validate ensures the Party was created through NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// Name returns the party's full name.
func (p Party) Name() string {
	return p.name
}

// Contact returns the party's phone number.
func (p Party) Contact() string {
	return p.contact
}

// RegionID returns the party's chosen region slug.
func (p Party) RegionID() string {
	return p.regionID
}

// ServiceCenterID returns the party's chosen service center slug.
func (p Party) ServiceCenterID() string {
	return p.serviceCenterID
}

// Address returns the party's street address.
func (p Party) Address() string {
	return p.address
}

// Instruction returns the pickup or delivery instruction.
func (p Party) Instruction() string {
	return p.instruction
}
