package commands

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrStageParcelCommandIsNotConstructed = errors.New(
		"StageParcelCommand must be created via NewStageParcelCommand constructor",
	)
)

// Decision is the customer's choice on the confirmation screen: pay now or
// keep the parcel as a draft.
type Decision int

const (
	// UnknownDecision represents an invalid or undefined decision.
	UnknownDecision Decision = iota

	// ConfirmPayment stages the order as pending payment.
	ConfirmPayment

	// SaveDraft stages the order as a draft ("continue shopping").
	SaveDraft
)

// ParseDecision converts the wire value ("confirm_payment", "save_draft")
// to a Decision.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "confirm_payment":
		return ConfirmPayment, nil
	case "save_draft":
		return SaveDraft, nil
	default:
		return UnknownDecision, errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%q is not a valid staging decision", s))
	}
}

// Validate checks that the Decision is one of the valid values.
func (d Decision) Validate() error {
	if d != ConfirmPayment && d != SaveDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%d is not a valid staging decision", d))
	}
	return nil
}

// String returns the wire representation of the decision.
func (d Decision) String() string {
	switch d {
	case ConfirmPayment:
		return "confirm_payment"
	case SaveDraft:
		return "save_draft"
	default:
		return "unknown"
	}
}

// StageParcelCommand represents a request to quote a submitted parcel draft
// and stage it as an order according to the customer's decision.
//
// Example:
//
//	cmd, err := NewStageParcelCommand(draft, ConfirmPayment, "sender@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid staging request: %w", err)
//	}
//
//	staged, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to stage parcel: %w", err)
//	}
//	fmt.Printf("Order %s staged as %s", staged.ID(), staged.Status())
type StageParcelCommand struct { //nolint:recvcheck //using for validation
	draft     parcel.Draft
	decision  Decision
	createdBy string

	guard guard.ConstructorGuard
}

// NewStageParcelCommand creates a staging command. The decision must be
// valid and createdBy (the identity collaborator's email for the current
// user) must be present. Full draft validation, including geography
// membership, happens in the handler where the directory is available.
func NewStageParcelCommand(draft parcel.Draft, decision Decision, createdBy string) (StageParcelCommand, error) {
	cmd := StageParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraft(draft),
		cmd.setDecision(decision),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return StageParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StageParcelCommand) Validate() error {
	return c.guard.Validate(ErrStageParcelCommandIsNotConstructed)
}

// Draft returns the submitted parcel draft.
func (c StageParcelCommand) Draft() parcel.Draft {
	return c.draft
}

// Decision returns the customer's staging decision.
func (c StageParcelCommand) Decision() Decision {
	return c.decision
}

// CreatedBy returns the email stamped on the resulting order.
func (c StageParcelCommand) CreatedBy() string {
	return c.createdBy
}

func (c *StageParcelCommand) setDraft(draft parcel.Draft) error {
	if err := draft.Type.Validate(); err != nil {
		return err
	}
	c.draft = draft
	return nil
}

func (c *StageParcelCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	c.decision = decision
	return nil
}

func (c *StageParcelCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	c.createdBy = createdBy
	return nil
}
