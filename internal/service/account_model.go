package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            ledger.AccountType
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	// TransactionCount is only filled in by GetAccount.
	TransactionCount int
}

// NewAccount is the input for CreateAccount.
type NewAccount struct {
	Name           string
	Type           ledger.AccountType
	InitialBalance decimal.Decimal
	IsDefault      bool
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		IsDefault:       row.IsDefault,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
