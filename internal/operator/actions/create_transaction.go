package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransaction records a transaction and applies it to its account's balance.
type CreateTransaction struct {
	OwnerID           uuid.UUID
	AccountID         uuid.UUID
	Type              ledger.TransactionType
	Amount            decimal.Decimal
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval *ledger.RecurringInterval

	Result *transaction.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	if _, err := ledger.ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if err := ledger.ValidateAmount(t.Amount); err != nil {
		return err
	}
	if err := ledger.ValidateRecurrence(t.IsRecurring, t.RecurringInterval); err != nil {
		return err
	}

	acc, err := writer.Account.FindByID(ctx, t.AccountID)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}
	if acc.OwnerID != t.OwnerID {
		return ledger.ErrForbidden
	}

	date := t.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	next, err := nextRecurringDate(t.IsRecurring, t.RecurringInterval, date)
	if err != nil {
		return err
	}

	created, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:         t.AccountID,
		OwnerID:           t.OwnerID,
		Type:              t.Type,
		Amount:            t.Amount,
		Description:       t.Description,
		Category:          t.Category,
		Date:              date,
		IsRecurring:       t.IsRecurring,
		RecurringInterval: t.RecurringInterval,
		NextRecurringDate: next,
	})
	if err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}

	if _, err := reconcileAndApply(ctx, writer, ledger.Add(created.Entry())); err != nil {
		return err
	}

	t.Result = created
	return nil
}

func nextRecurringDate(isRecurring bool, interval *ledger.RecurringInterval, date time.Time) (*time.Time, error) {
	if !isRecurring || interval == nil {
		return nil, nil
	}
	next, err := ledger.NextRecurringDate(date, *interval)
	if err != nil {
		return nil, err
	}
	return &next, nil
}
