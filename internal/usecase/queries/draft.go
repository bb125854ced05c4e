package queries

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// DraftReader gives serialized read access to a stored draft; fn runs under
// the store's draft lock.
type DraftReader interface {
	With(ctx context.Context, id uuid.UUID, fn func(*booking.Draft) error) error
}

type DraftQueries interface {
	GetDraft(ctx context.Context, id uuid.UUID) (*DraftView, error)
}

type draftQueriesImpl struct {
	drafts DraftReader
}

func NewDraftQueries(drafts DraftReader) DraftQueries {
	return &draftQueriesImpl{drafts: drafts}
}

func (q *draftQueriesImpl) GetDraft(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	var view *DraftView
	err := q.drafts.With(ctx, id, func(d *booking.Draft) error {
		view = NewDraftView(d)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDraftNotFound)
		}
		return nil, err
	}
	return view, nil
}
