package parcel

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/pkg/errs"
)

// Draft is the mutable, form-bound shape of a shipment in progress. Fields
// are exported because the form layer fills them one at a time; nothing is
// trusted until Validate has passed against the geography directory.
//
// Weight is the raw form input. It is meaningful only for non-document
// parcels; the tariff coerces anything unparseable to zero rather than
// rejecting it.
type Draft struct {
	Type     Type
	Title    string
	Weight   string
	Sender   Party
	Receiver Party
}

// Validate checks the draft as a whole: a valid type, a title, properly
// constructed parties, and the referential invariant that each party's
// service center belongs to that party's region.
func (d Draft) Validate(directory *geography.Directory) error {
	if err := errors.Join(
		d.Type.Validate(),
		requireField("title", d.Title),
		d.Sender.Validate(),
		d.Receiver.Validate(),
	); err != nil {
		return err
	}

	if !directory.Contains(d.Sender.RegionID(), d.Sender.ServiceCenterID()) {
		return errs.NewValueIsInvalidErrorWithCause("sender service center",
			fmt.Errorf("%q does not belong to region %q", d.Sender.ServiceCenterID(), d.Sender.RegionID()))
	}
	if !directory.Contains(d.Receiver.RegionID(), d.Receiver.ServiceCenterID()) {
		return errs.NewValueIsInvalidErrorWithCause("receiver service center",
			fmt.Errorf("%q does not belong to region %q", d.Receiver.ServiceCenterID(), d.Receiver.RegionID()))
	}

	return nil
}
