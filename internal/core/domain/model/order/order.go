package order

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/pkg/errs"

	"github.com/jinzhu/now"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrBreakdownIsNotQuotable is returned when order materialization is
	// attempted from a degraded cost breakdown (unresolved location).
	ErrBreakdownIsNotQuotable = errors.New("cost breakdown is not quotable")
)

// Order is the aggregate root for a staged parcel shipment. It is the
// one-shot product of a confirmed quote: a snapshot of the submitted draft,
// the cost breakdown it was quoted with, and the derived delivery and payment
// state.
//
// Order follows these invariants:
//   - The identifier is generated once and never reassigned
//   - The tracking history only grows; entries are appended, never removed
//   - Every mutation increments version and refreshes lastUpdated
//   - An order can only be created through NewOrder or RestoreOrder
type Order struct {
	id                 kernel.ParcelID
	createdBy          string
	createdAt          time.Time
	createdAtTimestamp int64

	// snapshot of the submitted draft
	parcelType parcel.Type
	title      string
	weight     kernel.Weight
	sender     parcel.Party
	receiver   parcel.Party

	pricing pricing.CostBreakdown

	status            Status
	trackingHistory   []TrackingEvent
	estimatedDelivery time.Time
	deliveryType      string

	paymentStatus PaymentStatus
	paymentMethod *string
	paymentID     *string

	lastUpdated time.Time
	version     int

	isConstructed bool
}

// NewOrder materializes an order from a validated draft and its held quote.
// The draft is snapshotted by value: later edits to it never affect the
// order. The initial tracking entry, estimated delivery date (end of the day
// one or three days out, by zone), delivery type, and pending payment state
// are all derived here.
//
// The caller guarantees the draft already passed Draft.Validate; NewOrder
// re-checks construction invariants but not geography membership.
func NewOrder(
	id kernel.ParcelID,
	createdBy string,
	draft parcel.Draft,
	cost pricing.CostBreakdown,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		requireCreatedBy(createdBy),
		draft.Type.Validate(),
		draft.Sender.Validate(),
		draft.Receiver.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if !cost.IsQuotable() {
		return nil, ErrBreakdownIsNotQuotable
	}

	initialEvent, err := NewTrackingEvent(
		status.initialTrackingStatus(),
		createdAt,
		status.initialTrackingDescription(),
		draft.Sender.RegionID(),
	)
	if err != nil {
		return nil, err
	}

	deliveryDate := createdAt.AddDate(0, 0, cost.Zone().DeliveryDays())

	return &Order{
		id:                 id,
		createdBy:          createdBy,
		createdAt:          createdAt,
		createdAtTimestamp: createdAt.UnixMilli(),
		parcelType:         draft.Type,
		title:              draft.Title,
		weight:             kernel.ParseWeight(draft.Weight),
		sender:             draft.Sender,
		receiver:           draft.Receiver,
		pricing:            cost,
		status:             status,
		trackingHistory:    []TrackingEvent{initialEvent},
		estimatedDelivery:  now.With(deliveryDate).EndOfDay(),
		deliveryType:       cost.Zone().DeliveryType(),
		paymentStatus:      PaymentPending,
		lastUpdated:        createdAt,
		version:            1,
		isConstructed:      true,
	}, nil
}

// RestoreOrder rehydrates an order from persistence. It trusts the stored
// derived fields instead of recomputing them, so an order reads back exactly
// as it was written.
func RestoreOrder(
	id kernel.ParcelID,
	createdBy string,
	createdAt time.Time,
	parcelType parcel.Type,
	title string,
	weight kernel.Weight,
	sender, receiver parcel.Party,
	cost pricing.CostBreakdown,
	status Status,
	trackingHistory []TrackingEvent,
	estimatedDelivery time.Time,
	deliveryType string,
	paymentStatus PaymentStatus,
	paymentMethod, paymentID *string,
	lastUpdated time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		requireCreatedBy(createdBy),
		parcelType.Validate(),
		sender.Validate(),
		receiver.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"order version", errors.New("version must be at least 1"))
	}

	history := make([]TrackingEvent, len(trackingHistory))
	copy(history, trackingHistory)

	return &Order{
		id:                 id,
		createdBy:          createdBy,
		createdAt:          createdAt,
		createdAtTimestamp: createdAt.UnixMilli(),
		parcelType:         parcelType,
		title:              title,
		weight:             weight,
		sender:             sender,
		receiver:           receiver,
		pricing:            cost,
		status:             status,
		trackingHistory:    history,
		estimatedDelivery:  estimatedDelivery,
		deliveryType:       deliveryType,
		paymentStatus:      paymentStatus,
		paymentMethod:      paymentMethod,
		paymentID:          paymentID,
		lastUpdated:        lastUpdated,
		version:            version,
		isConstructed:      true,
	}, nil
}

func requireCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AppendTracking adds an event to the tracking history. The history is
// append-only; this is the only way it changes. The mutation bumps the
// version counter and refreshes lastUpdated.
func (o *Order) AppendTracking(event TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	o.trackingHistory = append(o.trackingHistory, event)
	o.version++
	o.lastUpdated = event.Timestamp()
	return nil
}

// ID returns the order's unique "PKG-" identifier.
func (o *Order) ID() kernel.ParcelID {
	return o.id
}

// CreatedBy returns the email of the identity that created the order.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CreatedAtTimestamp returns the creation time in Unix milliseconds,
// kept for cheap sorting in external stores.
func (o *Order) CreatedAtTimestamp() int64 {
	return o.createdAtTimestamp
}

// ParcelType returns the snapshotted parcel type.
func (o *Order) ParcelType() parcel.Type {
	return o.parcelType
}

// Title returns the snapshotted parcel title.
func (o *Order) Title() string {
	return o.title
}

// Weight returns the snapshotted parcel weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Sender returns the snapshotted sender party.
func (o *Order) Sender() parcel.Party {
	return o.sender
}

// Receiver returns the snapshotted receiver party.
func (o *Order) Receiver() parcel.Party {
	return o.receiver
}

// Pricing returns the cost breakdown the order was staged with.
func (o *Order) Pricing() pricing.CostBreakdown {
	return o.pricing
}

// Status returns the order's lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TrackingHistory returns a copy of the append-only tracking history in
// chronological order.
func (o *Order) TrackingHistory() []TrackingEvent {
	history := make([]TrackingEvent, len(o.trackingHistory))
	copy(history, o.trackingHistory)
	return history
}

// EstimatedDelivery returns the projected delivery time.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// DeliveryType returns "local" or "intercity".
func (o *Order) DeliveryType() string {
	return o.deliveryType
}

// PaymentStatus returns the payment state, pending at creation.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method once known, nil before that.
func (o *Order) PaymentMethod() *string {
	return o.paymentMethod
}

// PaymentID returns the external payment reference once known, nil before that.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// LastUpdated returns the time of the most recent mutation.
func (o *Order) LastUpdated() time.Time {
	return o.lastUpdated
}

// Version returns the optimistic-concurrency counter, starting at 1.
func (o *Order) Version() int {
	return o.version
}
