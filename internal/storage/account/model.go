package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Account represents an account record.
type Account struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Type            ledger.AccountType
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	OwnerID uuid.UUID
	Limit   int
	Offset  int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	OwnerID         uuid.UUID
	Name            string
	Type            ledger.AccountType
	StartingBalance decimal.Decimal
	IsDefault       bool
}

// IReader is the read side of the account store. Missing rows are ledger.ErrNotFound.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// IWriter is the account store as seen from inside an atomic unit.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	LockByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Account, error)
	Create(ctx context.Context, create *AccountCreate) (*Account, error)
	IncrementBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	ClearDefault(ctx context.Context, ownerID uuid.UUID) error
	SetDefault(ctx context.Context, id uuid.UUID) error
}

var columns = []string{
	"id", "owner_id", "name", "type", "balance", "starting_balance",
	"is_default", "created_at", "updated_at",
}

type accountRow struct {
	ID              uuid.UUID       `db:"id"`
	OwnerID         uuid.UUID       `db:"owner_id"`
	Name            string          `db:"name"`
	Type            string          `db:"type"`
	Balance         decimal.Decimal `db:"balance"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	IsDefault       bool            `db:"is_default"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func rowToAccount(row *accountRow) *Account {
	return &Account{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		Type:            ledger.AccountType(row.Type),
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		IsDefault:       row.IsDefault,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
