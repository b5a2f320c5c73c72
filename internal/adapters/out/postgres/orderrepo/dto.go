// Package orderrepo provides data transfer objects and mapping functions for
// parcel order persistence. It implements the repository pattern for the
// order aggregate, converting between the domain model and the relational
// representation: one row per parcel plus child rows for the tracking
// history.
package orderrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/pricing"
)

// ParcelDTO represents the database structure for persisting parcel orders.
// Monetary columns hold hundredths and weight holds grams, so the tariff's
// exact arithmetic survives the round trip. Status is indexed for the
// read-side listings.
type ParcelDTO struct {
	ID        string   `gorm:"primaryKey"`
	CreatedBy string   `gorm:"index"`
	Type      string   `gorm:"column:parcel_type"`
	Title     string   ``
	Weight    int64    `gorm:"column:weight_grams"`
	Sender    PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver  PartyDTO `gorm:"embedded;embeddedPrefix:receiver_"`

	BaseCost    int64
	ExtraCost   int64
	Zone        string `gorm:"column:delivery_zone"`
	Explanation string

	Status            string `gorm:"index"`
	PaymentStatus     string
	PaymentMethod     *string
	PaymentID         *string
	DeliveryType      string
	EstimatedDelivery time.Time
	CreatedAt         time.Time `gorm:"index"`
	LastUpdated       time.Time
	Version           int

	TrackingEvents []TrackingEventDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel orders.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// PartyDTO represents the embedded sender or receiver columns within the
// parcel table.
type PartyDTO struct {
	Name          string
	Contact       string
	Region        string
	ServiceCenter string
	Address       string
	Instruction   string
}

// TrackingEventDTO represents one tracking history entry. Seq preserves
// append order within a parcel.
type TrackingEventDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ParcelID    string `gorm:"index"`
	Seq         int
	Status      string
	Description string
	Location    string
	OccurredAt  time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) ParcelDTO {
	history := aggregate.TrackingHistory()
	events := make([]TrackingEventDTO, 0, len(history))
	for i, e := range history {
		events = append(events, TrackingEventDTO{
			ParcelID:    aggregate.ID().String(),
			Seq:         i + 1,
			Status:      e.Status(),
			Description: e.Description(),
			Location:    e.Location(),
			OccurredAt:  e.Timestamp(),
		})
	}

	return ParcelDTO{
		ID:        aggregate.ID().String(),
		CreatedBy: aggregate.CreatedBy(),
		Type:      aggregate.ParcelType().String(),
		Title:     aggregate.Title(),
		Weight:    aggregate.Weight().Grams(),
		Sender:    partyFromDomain(aggregate.Sender()),
		Receiver:  partyFromDomain(aggregate.Receiver()),

		BaseCost:    aggregate.Pricing().BaseCost().Hundredths(),
		ExtraCost:   aggregate.Pricing().ExtraCost().Hundredths(),
		Zone:        aggregate.Pricing().Zone().String(),
		Explanation: aggregate.Pricing().Explanation(),

		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		PaymentMethod:     aggregate.PaymentMethod(),
		PaymentID:         aggregate.PaymentID(),
		DeliveryType:      aggregate.DeliveryType(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		LastUpdated:       aggregate.LastUpdated(),
		Version:           aggregate.Version(),

		TrackingEvents: events,
	}
}

func partyFromDomain(p parcel.Party) PartyDTO {
	return PartyDTO{
		Name:          p.Name(),
		Contact:       p.Contact(),
		Region:        p.RegionID(),
		ServiceCenter: p.ServiceCenterID(),
		Address:       p.Address(),
		Instruction:   p.Instruction(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, trusting the stored derived fields.
func toDomain(dto ParcelDTO) (*order.Order, error) {
	id, err := kernel.ParcelIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	parcelType, err := parcel.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeightFromGrams(dto.Weight)
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := partyToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}

	zone, err := pricing.ZoneFromString(dto.Zone)
	if err != nil {
		return nil, err
	}
	cost := pricing.NewCostBreakdown(
		kernel.NewMoneyFromHundredths(dto.BaseCost),
		kernel.NewMoneyFromHundredths(dto.ExtraCost),
		zone,
		dto.Explanation,
	)

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	history := make([]order.TrackingEvent, 0, len(dto.TrackingEvents))
	for _, e := range dto.TrackingEvents {
		event, eventErr := order.NewTrackingEvent(e.Status, e.OccurredAt, e.Description, e.Location)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return order.RestoreOrder(
		id,
		dto.CreatedBy,
		dto.CreatedAt,
		parcelType,
		dto.Title,
		weight,
		sender, receiver,
		cost,
		status,
		history,
		dto.EstimatedDelivery,
		dto.DeliveryType,
		paymentStatus,
		dto.PaymentMethod, dto.PaymentID,
		dto.LastUpdated,
		dto.Version,
	)
}

func partyToDomain(dto PartyDTO) (parcel.Party, error) {
	return parcel.NewParty(
		dto.Name, dto.Contact, dto.Region, dto.ServiceCenter, dto.Address, dto.Instruction)
}
