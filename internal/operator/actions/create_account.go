package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccount opens an account. The owner's first account is always the default.
type CreateAccount struct {
	OwnerID        uuid.UUID
	Name           string
	Type           ledger.AccountType
	InitialBalance decimal.Decimal
	IsDefault      bool

	Result *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: account type %q", ledger.ErrInvalidInput, c.Type)
	}

	owned, err := writer.Account.LockByOwner(ctx, c.OwnerID)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}

	isDefault := c.IsDefault || len(owned) == 0
	if isDefault && len(owned) > 0 {
		if err := writer.Account.ClearDefault(ctx, c.OwnerID); err != nil {
			return ledger.WrapStorage(ledger.StageApply, err)
		}
	}

	created, err := writer.Account.Create(ctx, &account.AccountCreate{
		OwnerID:         c.OwnerID,
		Name:            c.Name,
		Type:            c.Type,
		StartingBalance: c.InitialBalance,
		IsDefault:       isDefault,
	})
	if err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}

	c.Result = created
	return nil
}
