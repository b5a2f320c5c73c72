package services

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/pricing"
)

// ErrNoQuoteHeld is returned when Confirm or SaveDraft is called without a
// preceding successful Submit. Staging consumes the held quote, so a second
// stage without a fresh submission fails the same way.
var ErrNoQuoteHeld = errors.New("no quote is held: submit a parcel before staging")

// StagingSession is the order staging workflow for one submission flow. It
// owns the transient "quoted" state between form submission and the
// customer's decision:
//
//	Submit    -> validates the draft, prices it, holds the quote
//	Confirm   -> materializes a pending-payment order, clears the quote
//	SaveDraft -> materializes a draft order, clears the quote
//	Discard   -> drops the quote with nothing to undo
//
// A session serves one user's in-progress draft; a new Submit before a
// decision simply replaces the held quote. Sessions are not safe for
// concurrent use, and never need to be: each submission is an independent
// unit of work.
type StagingSession struct {
	calculator *TariffCalculator
	directory  *geography.Directory

	draft    parcel.Draft
	quote    pricing.CostBreakdown
	hasQuote bool
}

// NewStagingSession creates a staging session over the shared pricing engine
// and geography directory.
func NewStagingSession(calculator *TariffCalculator, directory *geography.Directory) *StagingSession {
	return &StagingSession{
		calculator: calculator,
		directory:  directory,
	}
}

// Submit validates the draft, prices it, and holds the resulting quote for a
// subsequent Confirm or SaveDraft. Submitting again replaces any quote
// already held. The returned breakdown is what the customer reviews on the
// confirmation screen.
func (s *StagingSession) Submit(draft parcel.Draft) (pricing.CostBreakdown, error) {
	if err := draft.Validate(s.directory); err != nil {
		return pricing.CostBreakdown{}, err
	}

	quote := s.calculator.Quote(
		draft.Type,
		draft.Sender.ServiceCenterID(),
		draft.Receiver.ServiceCenterID(),
		kernel.ParseWeight(draft.Weight),
	)
	if !quote.IsQuotable() {
		// Unresolvable location slipped past validation; do not hold the
		// degraded quote, it cannot back an order.
		s.reset()
		return quote, nil
	}

	s.draft = draft
	s.quote = quote
	s.hasQuote = true
	return quote, nil
}

// HasQuote reports whether a quote is currently held.
func (s *StagingSession) HasQuote() bool {
	return s.hasQuote
}

// Confirm materializes the held quote into a pending-payment order and
// clears the session. The order's single tracking entry records creation;
// payment itself belongs to a downstream collaborator.
func (s *StagingSession) Confirm(createdBy string) (*order.Order, error) {
	return s.stage(createdBy, order.StatusPendingPayment)
}

// SaveDraft materializes the held quote into a draft order ("continue
// shopping") and clears the session.
func (s *StagingSession) SaveDraft(createdBy string) (*order.Order, error) {
	return s.stage(createdBy, order.StatusDraft)
}

// Discard drops the held quote. Nothing has been committed before Confirm or
// SaveDraft, so there are no side effects to undo.
func (s *StagingSession) Discard() {
	s.reset()
}

func (s *StagingSession) stage(createdBy string, status order.Status) (*order.Order, error) {
	if !s.hasQuote {
		return nil, ErrNoQuoteHeld
	}

	staged, err := order.NewOrder(
		kernel.NewParcelID(), createdBy, s.draft, s.quote, status, time.Now())
	if err != nil {
		return nil, err
	}

	s.reset()
	return staged, nil
}

func (s *StagingSession) reset() {
	s.draft = parcel.Draft{}
	s.quote = pricing.CostBreakdown{}
	s.hasQuote = false
}
