package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// PaymentStatus is the payment side of an order. Staging always leaves it
// pending; settlement happens in an external payment collaborator.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined payment status.
	UnknownPaymentStatus PaymentStatus = iota

	// PaymentPending means no payment has been made yet.
	PaymentPending
)

// PaymentStatusFromString converts the persisted representation back to a
// PaymentStatus.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	if s == "pending" {
		return PaymentPending, nil
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"payment status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is a valid value.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation ("pending").
func (s PaymentStatus) String() string {
	if s == PaymentPending {
		return "pending"
	}
	return "unknown"
}
