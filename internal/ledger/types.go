package ledger

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType determines the sign of a transaction's effect on its account.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType validates a stored or user-supplied type value.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionKind, s)
	}
	return t, nil
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// AccountType is the kind of account a user opens.
type AccountType string

const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSavings AccountType = "SAVINGS"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeCurrent || t == AccountTypeSavings
}

// Entry is the part of a transaction that matters for reconciliation.
type Entry struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal
}

// SignedAmount returns +amount for income and -amount for expense.
func SignedAmount(e Entry) (decimal.Decimal, error) {
	switch e.Type {
	case TransactionTypeIncome:
		return e.Amount, nil
	case TransactionTypeExpense:
		return e.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q on transaction %s", ErrInvalidTransactionKind, e.Type, e.ID)
	}
}

// ValidateAmount rejects zero and negative magnitudes.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	return nil
}
