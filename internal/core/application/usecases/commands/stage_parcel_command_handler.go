package commands

import (
	"context"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/services"
)

// StageParcelCommandHandler handles the business logic for parcel staging.
// Each command runs through a fresh staging session: the draft is validated
// and priced, then materialized into an order in the status the customer's
// decision dictates, all inside one transaction.
//
// Example:
//
//	handler := NewStageParcelCommandHandler(uowFactory, calculator, directory)
//	cmd, _ := NewStageParcelCommand(draft, ConfirmPayment, "sender@example.com")
//
//	staged, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("staging failed: %w", err)
//	}
//	// staged is persisted in "pending_payment" status
type StageParcelCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator *services.TariffCalculator
	directory  *geography.Directory
}

// NewStageParcelCommandHandler creates a handler for parcel staging
// operations. Requires an OrderUoWFactory for transactional persistence plus
// the shared pricing engine and geography directory.
func NewStageParcelCommandHandler(
	uowFactory OrderUoWFactory,
	calculator *services.TariffCalculator,
	directory *geography.Directory,
) StageParcelCommandHandler {
	return StageParcelCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		directory:  directory,
	}
}

// Handle processes the staging command. The draft is submitted to a staging
// session, the held quote is materialized according to the decision, and the
// resulting order is persisted or rolled back on error. Returns the staged
// order so callers can render the confirmation response.
func (h *StageParcelCommandHandler) Handle(ctx context.Context, cmd StageParcelCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session := services.NewStagingSession(h.calculator, h.directory)
	if _, err := session.Submit(cmd.Draft()); err != nil {
		return nil, err
	}

	var staged *order.Order
	var err error
	switch cmd.Decision() {
	case SaveDraft:
		staged, err = session.SaveDraft(cmd.CreatedBy())
	default:
		staged, err = session.Confirm(cmd.CreatedBy())
	}
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, staged); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return staged, nil
}
