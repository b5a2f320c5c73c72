package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Status is the initial lifecycle classification of a staged order. Within
// this service an order is born in one of two states and never moves: the
// customer either confirmed and proceeded to payment, or saved the parcel as
// a draft for later. Downstream collaborators own all later transitions.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// StatusDraft marks an order saved without payment ("continue shopping").
	StatusDraft

	// StatusPendingPayment marks an order confirmed and awaiting payment.
	StatusPendingPayment
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:        "unknown",
		StatusDraft:          "draft",
		StatusPendingPayment: "pending_payment",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:          "draft",
		StatusPendingPayment: "pending_payment",
	}
}

// StatusFromString converts the persisted representation back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire representation ("draft", "pending_payment").
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// initialTrackingStatus is the status label of the first tracking entry an
// order of this status carries.
func (s Status) initialTrackingStatus() string {
	if s == StatusPendingPayment {
		return "created"
	}
	return "draft"
}

// initialTrackingDescription is the description of the first tracking entry.
func (s Status) initialTrackingDescription() string {
	if s == StatusPendingPayment {
		return "Parcel created and waiting for payment"
	}
	return "Parcel created as draft - payment pending"
}
