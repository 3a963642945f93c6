// Package notify tells interested parties which derived views went stale after
// a committed mutation.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Reason string

const (
	ReasonAccountCreated        Reason = "account.created"
	ReasonDefaultAccountChanged Reason = "account.default_changed"
	ReasonTransactionCreated    Reason = "transaction.created"
	ReasonTransactionUpdated    Reason = "transaction.updated"
	ReasonTransactionsDeleted   Reason = "transactions.deleted"
	ReasonBudgetUpdated         Reason = "budget.updated"
)

const DashboardPath = "/dashboard"

func AccountPath(accountID uuid.UUID) string {
	return "/account/" + accountID.String()
}

// Invalidation names the views a committed mutation made stale.
type Invalidation struct {
	Reason     Reason      `json:"reason"`
	OwnerID    uuid.UUID   `json:"ownerID"`
	AccountIDs []uuid.UUID `json:"accountIDs,omitempty"`
	Paths      []string    `json:"paths"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// NewInvalidation covers the dashboard plus the page of every account given.
func NewInvalidation(reason Reason, ownerID uuid.UUID, accountIDs ...uuid.UUID) Invalidation {
	paths := make([]string, 0, len(accountIDs)+1)
	paths = append(paths, DashboardPath)
	for _, id := range accountIDs {
		paths = append(paths, AccountPath(id))
	}
	return Invalidation{
		Reason:     reason,
		OwnerID:    ownerID,
		AccountIDs: accountIDs,
		Paths:      paths,
		OccurredAt: time.Now().UTC(),
	}
}

type Notifier interface {
	Invalidate(ctx context.Context, inv Invalidation) error
}

// Multi delivers to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Invalidate(ctx context.Context, inv Invalidation) error {
	var errs []error
	for _, n := range m {
		if err := n.Invalidate(ctx, inv); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
