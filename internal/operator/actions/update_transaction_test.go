package actions

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// applyUpdate mimics the store: it returns stored with the update applied.
func applyUpdate(stored *transaction.Transaction) func(context.Context, uuid.UUID, *transaction.TransactionUpdate) (*transaction.Transaction, error) {
	return func(_ context.Context, _ uuid.UUID, u *transaction.TransactionUpdate) (*transaction.Transaction, error) {
		return mergePatch(stored, u), nil
	}
}

func TestUpdateTransaction_AmountChangeSameAccount(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountA := newID(), newID()
	stored := storedTransaction(owner, accountA, ledger.TransactionTypeExpense, "40")

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)
	stores.transactions.EXPECT().Update(mock.Anything, stored.ID, mock.Anything).RunAndReturn(applyUpdate(stored))
	stores.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.MatchedBy(decEq("-15"))).Return(nil)

	action := &UpdateTransaction{
		OwnerID:       owner,
		TransactionID: stored.ID,
		Patch:         transaction.TransactionUpdate{Amount: omit.From(dec("55"))},
	}
	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.True(t, action.Result.Amount.Equal(dec("55")))
}

func TestUpdateTransaction_MoveAcrossAccounts(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountA, accountB := newID(), newID(), newID()
	stored := storedTransaction(owner, accountA, ledger.TransactionTypeIncome, "70")

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)
	stores.accounts.EXPECT().FindByID(mock.Anything, accountB).Return(&account.Account{ID: accountB, OwnerID: owner}, nil)
	stores.transactions.EXPECT().Update(mock.Anything, stored.ID, mock.Anything).RunAndReturn(applyUpdate(stored))
	stores.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.MatchedBy(decEq("-70"))).Return(nil)
	stores.accounts.EXPECT().IncrementBalance(mock.Anything, accountB, mock.MatchedBy(decEq("70"))).Return(nil)

	action := &UpdateTransaction{
		OwnerID:       owner,
		TransactionID: stored.ID,
		Patch:         transaction.TransactionUpdate{AccountID: omit.From(accountB)},
	}
	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateTransaction_MoveToForeignAccount(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountA, foreign := newID(), newID(), newID()
	stored := storedTransaction(owner, accountA, ledger.TransactionTypeIncome, "70")

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)
	stores.accounts.EXPECT().FindByID(mock.Anything, foreign).Return(&account.Account{ID: foreign, OwnerID: newID()}, nil)

	action := &UpdateTransaction{
		OwnerID:       owner,
		TransactionID: stored.ID,
		Patch:         transaction.TransactionUpdate{AccountID: omit.From(foreign)},
	}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrForbidden)
}

func TestUpdateTransaction_ForeignTransaction(t *testing.T) {
	writer, stores := newTestWriter(t)
	stored := storedTransaction(newID(), newID(), ledger.TransactionTypeIncome, "1")

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)

	action := &UpdateTransaction{OwnerID: newID(), TransactionID: stored.ID}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrForbidden)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	writer, stores := newTestWriter(t)
	id := newID()

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, ledger.ErrNotFound)

	action := &UpdateTransaction{OwnerID: newID(), TransactionID: id}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrNotFound)
}

func TestUpdateTransaction_StopRecurring(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner, accountA := newID(), newID()
	weekly := ledger.RecurringWeekly
	next := time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)
	stored := storedTransaction(owner, accountA, ledger.TransactionTypeExpense, "12")
	stored.IsRecurring = true
	stored.RecurringInterval = &weekly
	stored.NextRecurringDate = &next

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)
	stores.transactions.EXPECT().Update(mock.Anything, stored.ID, mock.MatchedBy(func(u *transaction.TransactionUpdate) bool {
		return u.RecurringInterval.IsNull() && u.NextRecurringDate.IsNull()
	})).RunAndReturn(applyUpdate(stored))

	action := &UpdateTransaction{
		OwnerID:       owner,
		TransactionID: stored.ID,
		Patch:         transaction.TransactionUpdate{IsRecurring: omit.From(false)},
	}
	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.False(t, action.Result.IsRecurring)
	assert.Nil(t, action.Result.RecurringInterval)
}

func TestUpdateTransaction_RejectsInvalidMergedState(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner := newID()
	stored := storedTransaction(owner, newID(), ledger.TransactionTypeExpense, "12")

	stores.transactions.EXPECT().FindByIDForUpdate(mock.Anything, stored.ID).Return(stored, nil)

	action := &UpdateTransaction{
		OwnerID:       owner,
		TransactionID: stored.ID,
		Patch:         transaction.TransactionUpdate{RecurringInterval: omitnull.From(ledger.RecurringDaily)},
	}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrInvalidRecurrence)
}

func TestMergePatch_LeavesUnsetFields(t *testing.T) {
	stored := storedTransaction(newID(), newID(), ledger.TransactionTypeIncome, "8")
	stored.Description = "Refund"
	stored.Category = "Shopping"

	merged := mergePatch(stored, &transaction.TransactionUpdate{Category: omit.From("Returns")})

	assert.Equal(t, "Refund", merged.Description)
	assert.Equal(t, "Returns", merged.Category)
	assert.Equal(t, "Shopping", stored.Category)
}
