package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

type UpsertBudget struct {
	OwnerID uuid.UUID
	Amount  decimal.Decimal

	Result *budget.Budget
}

func (u *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if u.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	if err := ledger.ValidateAmount(u.Amount); err != nil {
		return err
	}

	saved, err := writer.Budget.Upsert(ctx, u.OwnerID, u.Amount)
	if err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}
	u.Result = saved
	return nil
}
