package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// UpdateTransaction applies a partial update and moves the balance effect from
// the stored version of the transaction to the updated one.
type UpdateTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	Patch         transaction.TransactionUpdate

	Result            *transaction.Transaction
	PreviousAccountID uuid.UUID
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if u.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}

	stored, err := writer.Transaction.FindByIDForUpdate(ctx, u.TransactionID)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}
	if stored.OwnerID != u.OwnerID {
		return ledger.ErrForbidden
	}

	merged := mergePatch(stored, &u.Patch)

	if merged.AccountID != stored.AccountID {
		acc, err := writer.Account.FindByID(ctx, merged.AccountID)
		if err != nil {
			return ledger.WrapStorage(ledger.StageFetch, err)
		}
		if acc.OwnerID != u.OwnerID {
			return ledger.ErrForbidden
		}
	}

	if _, err := ledger.ParseTransactionType(string(merged.Type)); err != nil {
		return err
	}
	if err := ledger.ValidateAmount(merged.Amount); err != nil {
		return err
	}
	if err := ledger.ValidateRecurrence(merged.IsRecurring, merged.RecurringInterval); err != nil {
		return err
	}

	next, err := nextRecurringDate(merged.IsRecurring, merged.RecurringInterval, merged.Date)
	if err != nil {
		return err
	}

	update := u.Patch
	if next != nil {
		update.NextRecurringDate = omitnull.From(*next)
	} else {
		update.NextRecurringDate = omitnull.Null[time.Time]()
	}
	if !merged.IsRecurring {
		update.RecurringInterval = omitnull.Null[ledger.RecurringInterval]()
	}

	updated, err := writer.Transaction.Update(ctx, stored.ID, &update)
	if err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}

	if _, err := reconcileAndApply(ctx, writer, ledger.Update(stored.Entry(), updated.Entry())); err != nil {
		return err
	}

	u.Result = updated
	u.PreviousAccountID = stored.AccountID
	return nil
}

// mergePatch returns stored with the set fields of patch applied.
func mergePatch(stored *transaction.Transaction, patch *transaction.TransactionUpdate) *transaction.Transaction {
	merged := *stored
	merged.AccountID = patch.AccountID.GetOr(stored.AccountID)
	merged.Type = patch.Type.GetOr(stored.Type)
	merged.Amount = patch.Amount.GetOr(stored.Amount)
	merged.Description = patch.Description.GetOr(stored.Description)
	merged.Category = patch.Category.GetOr(stored.Category)
	merged.Date = patch.Date.GetOr(stored.Date)
	merged.IsRecurring = patch.IsRecurring.GetOr(stored.IsRecurring)
	if !patch.RecurringInterval.IsUnset() {
		merged.RecurringInterval = patch.RecurringInterval.Ptr()
	}
	if !merged.IsRecurring && patch.RecurringInterval.IsUnset() {
		merged.RecurringInterval = nil
	}
	return &merged
}
