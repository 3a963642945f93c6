package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	op     processor
	reader *storage.Reader
	inv    invalidator
}

func NewAccountService(op processor, reader *storage.Reader, inv invalidator) *AccountService {
	return &AccountService{op: op, reader: reader, inv: inv}
}

// CreateAccount opens an account for ownerID.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, input NewAccount) (*Account, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	action := &actions.CreateAccount{
		OwnerID:        ownerID,
		Name:           input.Name,
		Type:           input.Type,
		InitialBalance: input.InitialBalance,
		IsDefault:      input.IsDefault,
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.inv.send(ctx, notify.NewInvalidation(notify.ReasonAccountCreated, ownerID, action.Result.ID))
	return accountFromStorage(action.Result), nil
}

// GetAccount returns one of the owner's accounts with its transaction count.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, accountID uuid.UUID) (*Account, error) {
	row, err := ownedAccount(ctx, s.reader, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	count, err := s.reader.Transactions.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, ledger.WrapStorage(ledger.StageFetch, err)
	}

	result := accountFromStorage(row)
	result.TransactionCount = count
	return result, nil
}

// ListAccounts returns a page of the owner's accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	if ownerID == uuid.Nil {
		return nil, nil, ledger.ErrUnauthenticated
	}

	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	result, err := s.reader.Accounts.List(ctx, &account.AccountFilter{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, nil, ledger.WrapStorage(ledger.StageFetch, err)
	}

	if len(result.Accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	converted := make([]Account, len(result.Accounts))
	for i, row := range result.Accounts {
		converted[i] = *accountFromStorage(row)
	}
	return converted, nextCursor, nil
}

// SetDefaultAccount makes accountID the owner's single default account.
func (s *AccountService) SetDefaultAccount(ctx context.Context, ownerID, accountID uuid.UUID) (*Account, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	action := &actions.SetDefaultAccount{OwnerID: ownerID, AccountID: accountID}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.inv.send(ctx, notify.NewInvalidation(notify.ReasonDefaultAccountChanged, ownerID))
	return accountFromStorage(action.Result), nil
}

// ownedAccount loads an account for reading, enforcing ownership.
func ownedAccount(ctx context.Context, reader *storage.Reader, ownerID, accountID uuid.UUID) (*account.Account, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	row, err := reader.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, ledger.WrapStorage(ledger.StageFetch, err)
	}
	if row.OwnerID != ownerID {
		return nil, ledger.ErrForbidden
	}
	return row, nil
}
