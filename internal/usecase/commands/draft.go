package commands

import (
	"context"
	"log/slog"
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/coupon"
	"event-booking/internal/domain/event"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/clock"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// CheckoutHandoff is the snapshot the engine emits to checkout: the schedule
// that produced the displayed price, the priced quantities, and the
// participant placeholders. Checkout consumes this and is out of scope here.
type CheckoutHandoff struct {
	DraftID       uuid.UUID             `json:"draft_id"`
	EventID       uuid.UUID             `json:"event_id"`
	ScheduleID    uuid.UUID             `json:"schedule_id"`
	Currency      string                `json:"currency"`
	Quantity      int                   `json:"quantity"`
	SubtotalCents int64                 `json:"subtotal_cents"`
	DiscountCents int64                 `json:"discount_cents"`
	TotalCents    int64                 `json:"total_cents"`
	CouponCode    *string               `json:"coupon_code,omitempty"`
	Participants  []booking.Participant `json:"participants"`
}

type DraftCommands interface {
	Begin(ctx context.Context, eventID uuid.UUID, ownerID *uuid.UUID) (*queries.DraftView, error)
	SelectDate(ctx context.Context, draftID uuid.UUID, date time.Time) (*queries.DraftView, error)
	SetQuantity(ctx context.Context, draftID uuid.UUID, quantity int) (*queries.DraftView, error)
	SetParticipant(ctx context.Context, draftID uuid.UUID, index int, p booking.Participant) (*queries.DraftView, error)
	ApplyCoupon(ctx context.Context, draftID uuid.UUID, code string) (*queries.DraftView, error)
	RemoveCoupon(ctx context.Context, draftID uuid.UUID) (*queries.DraftView, error)
	Proceed(ctx context.Context, draftID uuid.UUID) (*CheckoutHandoff, error)
}

type draftCommandsImpl struct {
	events    queries.EventReadStore
	drafts    DraftStore
	validator CouponValidator
	policy    event.QuantityPolicy
	clock     clock.Clock
}

func NewDraftCommands(
	events queries.EventReadStore,
	drafts DraftStore,
	validator CouponValidator,
	policy event.QuantityPolicy,
	clock clock.Clock,
) DraftCommands {
	return &draftCommandsImpl{
		events:    events,
		drafts:    drafts,
		validator: validator,
		policy:    policy,
		clock:     clock,
	}
}

// Begin creates a draft for an event, priced from the default schedule (first
// in catalog order) with quantity 1 and a single blank participant.
func (c *draftCommandsImpl) Begin(ctx context.Context, eventID uuid.UUID, ownerID *uuid.UUID) (*queries.DraftView, error) {
	ev, err := c.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sched := event.ResolveSchedule(ev.Schedules(), nil)
	if sched == nil {
		return nil, errs.ErrNoSchedules
	}

	draft := booking.NewDraft(
		ev.ID(),
		ownerID,
		ev.Currency(),
		sched.ID(),
		sched.UnitPriceCents(ev.BasePriceCents()),
		c.clock.Now(),
	)
	if err := c.drafts.Insert(ctx, draft); err != nil {
		return nil, err
	}

	return queries.NewDraftView(draft), nil
}

// SelectDate resolves the schedule for a calendar date and repoints the draft
// at it, schedule id and unit price together.
func (c *draftCommandsImpl) SelectDate(ctx context.Context, draftID uuid.UUID, date time.Time) (*queries.DraftView, error) {
	var view *queries.DraftView
	err := c.withEventAndDraft(ctx, draftID, func(ev *event.Event, d *booking.Draft) error {
		sched := event.ResolveSchedule(ev.Schedules(), &date)
		if sched == nil {
			return errs.ErrNoSchedules
		}
		d.SetSchedule(sched.ID(), sched.UnitPriceCents(ev.BasePriceCents()), c.clock.Now())
		view = queries.NewDraftView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SetQuantity validates the requested quantity against the draft's schedule
// and resizes the participant list. On rejection the draft keeps its previous
// quantity. An applied discount is deliberately not rescaled; it stays as
// validated until the user re-applies the coupon.
func (c *draftCommandsImpl) SetQuantity(ctx context.Context, draftID uuid.UUID, quantity int) (*queries.DraftView, error) {
	var view *queries.DraftView
	err := c.withEventAndDraft(ctx, draftID, func(ev *event.Event, d *booking.Draft) error {
		sched := scheduleByID(ev, d.ScheduleID())
		if sched == nil {
			return errs.ErrScheduleNotFound
		}
		if err := c.policy.ValidateQuantity(*sched, quantity); err != nil {
			return errs.Mark(err, errs.ErrQuantityOutOfRange)
		}
		if err := d.SetQuantity(quantity, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrQuantityOutOfRange)
		}
		view = queries.NewDraftView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) SetParticipant(ctx context.Context, draftID uuid.UUID, index int, p booking.Participant) (*queries.DraftView, error) {
	var view *queries.DraftView
	err := c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		if err := d.SetParticipant(index, p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		view = queries.NewDraftView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ApplyCoupon runs the coupon state machine: Validating is entered under the
// draft lock, the remote call happens outside it, and the outcome is applied
// only if the draft still matches the order context that was validated. A
// rejection never blocks the rest of the booking flow; the draft simply
// carries the mapped message with a zero discount.
func (c *draftCommandsImpl) ApplyCoupon(ctx context.Context, draftID uuid.UUID, code string) (*queries.DraftView, error) {
	trimmed, err := coupon.NormalizeCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		attempt uint64
		req     CouponValidationRequest
	)
	err = c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		a, beginErr := d.BeginCouponValidation(c.clock.Now())
		if beginErr != nil {
			return errs.Mark(beginErr, errs.ErrValidationInFlight)
		}
		attempt = a
		req = CouponValidationRequest{
			Code:             trimmed,
			OrderAmountCents: d.OrderAmountCents(),
			EventIDs:         []uuid.UUID{d.EventID()},
			UserID:           d.OwnerID(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, validateErr := c.validator.Validate(ctx, req)

	var view *queries.DraftView
	err = c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		switch {
		case validateErr != nil:
			rejection := coupon.RejectionMessage(validateErr.Error())
			d.CompleteCouponValidation(attempt, nil, rejection, c.clock.Now())
		case !result.IsValid:
			d.CompleteCouponValidation(attempt, nil, coupon.MsgInvalidCode, c.clock.Now())
		default:
			applied := result.Coupon
			if !d.CompleteCouponValidation(attempt, &applied, "", c.clock.Now()) {
				slog.Warn("discarded stale coupon validation",
					"draft_id", draftID, "code", trimmed, "attempt", attempt)
			}
		}
		view = queries.NewDraftView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *draftCommandsImpl) RemoveCoupon(ctx context.Context, draftID uuid.UUID) (*queries.DraftView, error) {
	var view *queries.DraftView
	err := c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		if err := d.RemoveCoupon(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrNoCouponApplied)
		}
		view = queries.NewDraftView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Proceed re-checks readiness at the moment of hand-off, not only at
// selection time: availability may have changed since the date was picked.
// The check runs against the freshly fetched schedule snapshot; stale data is
// tolerated, the server settles it at actual checkout.
func (c *draftCommandsImpl) Proceed(ctx context.Context, draftID uuid.UUID) (*CheckoutHandoff, error) {
	var handoff *CheckoutHandoff
	err := c.withEventAndDraft(ctx, draftID, func(ev *event.Event, d *booking.Draft) error {
		sched := scheduleByID(ev, d.ScheduleID())
		if sched == nil {
			return errs.Mark(errs.ErrScheduleNotFound, errs.ErrDraftNotReady)
		}
		if d.CouponStatus() == booking.CouponValidating {
			return errs.Mark(errs.ErrValidationInFlight, errs.ErrDraftNotReady)
		}
		if err := c.policy.ValidateQuantity(*sched, d.Quantity()); err != nil {
			return errs.Mark(err, errs.ErrDraftNotReady)
		}

		quote := d.Quote()
		var couponCode *string
		if applied := d.AppliedCoupon(); applied != nil {
			code := applied.Code
			couponCode = &code
		}

		handoff = &CheckoutHandoff{
			DraftID:       d.ID(),
			EventID:       d.EventID(),
			ScheduleID:    d.ScheduleID(),
			Currency:      d.Currency(),
			Quantity:      d.Quantity(),
			SubtotalCents: quote.SubtotalCents,
			DiscountCents: quote.DiscountCents,
			TotalCents:    quote.TotalCents,
			CouponCode:    couponCode,
			Participants:  d.Participants(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return handoff, nil
}

func (c *draftCommandsImpl) withEventAndDraft(
	ctx context.Context,
	draftID uuid.UUID,
	fn func(*event.Event, *booking.Draft) error,
) error {
	// The event is fetched before taking the draft lock so the read store is
	// never awaited while a draft is held.
	var eventID uuid.UUID
	if err := c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		eventID = d.EventID()
		return nil
	}); err != nil {
		return err
	}

	ev, err := c.findEvent(ctx, eventID)
	if err != nil {
		return err
	}

	return c.withDraft(ctx, draftID, func(d *booking.Draft) error {
		return fn(ev, d)
	})
}

func (c *draftCommandsImpl) findEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	ev, err := c.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ev, nil
}

func (c *draftCommandsImpl) withDraft(ctx context.Context, id uuid.UUID, fn func(*booking.Draft) error) error {
	err := c.drafts.With(ctx, id, fn)
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrDraftNotFound)
	}
	return err
}

func scheduleByID(ev *event.Event, id uuid.UUID) *event.Schedule {
	schedules := ev.Schedules()
	for i := range schedules {
		if schedules[i].ID() == id {
			return &schedules[i]
		}
	}
	return nil
}
