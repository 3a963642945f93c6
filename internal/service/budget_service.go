package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Budget is an owner's monthly spending limit.
type Budget struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// BudgetProgress is the month-to-date spend of one account against the budget.
// Budget is nil when the owner has not set one.
type BudgetProgress struct {
	Budget        *Budget
	MonthExpenses decimal.Decimal
	Remaining     decimal.Decimal
	PercentUsed   decimal.Decimal
}

// BudgetService handles budget business logic.
type BudgetService struct {
	op     processor
	reader *storage.Reader
	inv    invalidator
}

func NewBudgetService(op processor, reader *storage.Reader, inv invalidator) *BudgetService {
	return &BudgetService{op: op, reader: reader, inv: inv}
}

// UpdateBudget sets the owner's monthly budget.
func (s *BudgetService) UpdateBudget(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	action := &actions.UpsertBudget{OwnerID: ownerID, Amount: amount}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.inv.send(ctx, notify.NewInvalidation(notify.ReasonBudgetUpdated, ownerID))
	return &Budget{
		ID:        action.Result.ID,
		Amount:    action.Result.Amount,
		UpdatedAt: action.Result.UpdatedAt,
	}, nil
}

// GetCurrentBudget reports the expenses on accountID in now's calendar month
// against the owner's budget.
func (s *BudgetService) GetCurrentBudget(ctx context.Context, ownerID, accountID uuid.UUID, now time.Time) (*BudgetProgress, error) {
	if _, err := ownedAccount(ctx, s.reader, ownerID, accountID); err != nil {
		return nil, err
	}

	start, end := ledger.MonthBounds(now)
	expenses, err := s.reader.Transactions.SumExpenses(ctx, accountID, start, end)
	if err != nil {
		return nil, ledger.WrapStorage(ledger.StageFetch, err)
	}

	progress := &BudgetProgress{
		MonthExpenses: expenses,
		Remaining:     decimal.Zero,
		PercentUsed:   decimal.Zero,
	}

	row, err := s.reader.Budgets.FindByOwner(ctx, ownerID)
	if errors.Is(err, ledger.ErrNotFound) {
		return progress, nil
	}
	if err != nil {
		return nil, ledger.WrapStorage(ledger.StageFetch, err)
	}

	progress.Budget = &Budget{ID: row.ID, Amount: row.Amount, UpdatedAt: row.UpdatedAt}
	progress.Remaining = row.Amount.Sub(expenses)
	if row.Amount.IsPositive() {
		progress.PercentUsed = expenses.Div(row.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return progress, nil
}
