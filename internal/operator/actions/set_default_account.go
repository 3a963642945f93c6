package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// SetDefaultAccount makes AccountID the owner's only default account.
type SetDefaultAccount struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID

	Result *account.Account
}

func (s *SetDefaultAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if s.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}

	// Locking every account of the owner serialises default changes per owner.
	owned, err := writer.Account.LockByOwner(ctx, s.OwnerID)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}

	var target *account.Account
	for _, acc := range owned {
		if acc.ID == s.AccountID {
			target = acc
			break
		}
	}
	if target == nil {
		return s.missingTarget(ctx, writer)
	}

	if target.IsDefault {
		s.Result = target
		return nil
	}

	if err := writer.Account.ClearDefault(ctx, s.OwnerID); err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}
	if err := writer.Account.SetDefault(ctx, target.ID); err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}

	updated, err := writer.Account.FindByID(ctx, target.ID)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}
	s.Result = updated
	return nil
}

// missingTarget tells a foreign account apart from one that does not exist.
func (s *SetDefaultAccount) missingTarget(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.Account.FindByID(ctx, s.AccountID)
	if errors.Is(err, ledger.ErrNotFound) {
		return ledger.ErrNotFound
	}
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}
	if acc.OwnerID != s.OwnerID {
		return ledger.ErrForbidden
	}
	// Created after our lock was taken; treat as not yet visible.
	return ledger.ErrNotFound
}
