package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func stored(ownerID, accountID uuid.UUID, t ledger.TransactionType, amount string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:        newID(),
		AccountID: accountID,
		OwnerID:   ownerID,
		Type:      t,
		Amount:    dec(amount),
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func sortedIDs(ids ...uuid.UUID) []uuid.UUID {
	out := append([]uuid.UUID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// -- BulkDeleteTransactions tests --

func TestBulkDeleteTransactions_ReversesBalancesAndNotifies(t *testing.T) {
	f := newFixture(t)
	owner, accountA, accountB := newID(), newID(), newID()
	expense := stored(owner, accountA, ledger.TransactionTypeExpense, "200")
	income := stored(owner, accountA, ledger.TransactionTypeIncome, "50")
	other := stored(owner, accountB, ledger.TransactionTypeIncome, "10")
	foreign := newID()

	f.transactions.EXPECT().
		FindOwnedForUpdate(mock.Anything, owner, []uuid.UUID{expense.ID, income.ID, other.ID, foreign}).
		Return([]*transaction.Transaction{expense, income, other}, nil)
	f.transactions.EXPECT().
		DeleteByIDs(mock.Anything, owner, []uuid.UUID{expense.ID, income.ID, other.ID}).
		Return(int64(3), nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.MatchedBy(decEq("150"))).Return(nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, accountB, mock.MatchedBy(decEq("-10"))).Return(nil)

	result, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), owner,
		[]uuid.UUID{expense.ID, income.ID, expense.ID, other.ID, foreign})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.DeletedCount)
	assert.Equal(t, sortedIDs(accountA, accountB), result.AffectedAccountIDs)

	commits, rollbacks := f.committer.counts()
	assert.Equal(t, 1, commits)
	assert.Equal(t, 0, rollbacks)

	sent := f.notifier.invalidations()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.ReasonTransactionsDeleted, sent[0].Reason)
	assert.Equal(t, owner, sent[0].OwnerID)
	assert.Contains(t, sent[0].Paths, notify.DashboardPath)
	assert.Contains(t, sent[0].Paths, notify.AccountPath(accountA))
	assert.Contains(t, sent[0].Paths, notify.AccountPath(accountB))
}

func TestBulkDeleteTransactions_EmptyIDsSkipsStorage(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), newID(), nil)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, result.DeletedCount)
	assert.Empty(t, result.AffectedAccountIDs)
	commits, _ := f.committer.counts()
	assert.Zero(t, commits)
	assert.Empty(t, f.notifier.invalidations())
}

func TestBulkDeleteTransactions_NothingOwnedIsNotAnError(t *testing.T) {
	f := newFixture(t)
	owner := newID()
	ids := []uuid.UUID{newID(), newID()}

	f.transactions.EXPECT().FindOwnedForUpdate(mock.Anything, owner, ids).Return(nil, nil)

	result, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), owner, ids)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, result.DeletedCount)
	assert.NotNil(t, result.AffectedAccountIDs)
	assert.Empty(t, f.notifier.invalidations())
}

func TestBulkDeleteTransactions_IncrementFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	owner, accountA := newID(), newID()
	row := stored(owner, accountA, ledger.TransactionTypeExpense, "75")

	f.transactions.EXPECT().FindOwnedForUpdate(mock.Anything, owner, []uuid.UUID{row.ID}).
		Return([]*transaction.Transaction{row}, nil)
	f.transactions.EXPECT().DeleteByIDs(mock.Anything, owner, []uuid.UUID{row.ID}).Return(int64(1), nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.Anything).Return(errConnReset)

	result, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), owner, []uuid.UUID{row.ID})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrStorageFailure)
	commits, rollbacks := f.committer.counts()
	assert.Zero(t, commits)
	assert.Equal(t, 1, rollbacks)
	assert.Empty(t, f.notifier.invalidations())
}

func TestBulkDeleteTransactions_FetchFailure(t *testing.T) {
	f := newFixture(t)
	owner := newID()
	ids := []uuid.UUID{newID()}

	f.transactions.EXPECT().FindOwnedForUpdate(mock.Anything, owner, ids).Return(nil, errConnReset)

	_, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), owner, ids)

	assert.ErrorIs(t, err, ledger.ErrTransactionFetchFailed)
}

func TestBulkDeleteTransactions_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), uuid.Nil, []uuid.UUID{newID()})

	assert.ErrorIs(t, err, ledger.ErrUnauthenticated)
}

func TestBulkDeleteTransactions_NotifierFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errConnReset
	owner, accountA := newID(), newID()
	row := stored(owner, accountA, ledger.TransactionTypeIncome, "5")

	f.transactions.EXPECT().FindOwnedForUpdate(mock.Anything, owner, []uuid.UUID{row.ID}).
		Return([]*transaction.Transaction{row}, nil)
	f.transactions.EXPECT().DeleteByIDs(mock.Anything, owner, []uuid.UUID{row.ID}).Return(int64(1), nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.MatchedBy(decEq("-5"))).Return(nil)

	result, err := f.svc.Transaction.BulkDeleteTransactions(context.Background(), owner, []uuid.UUID{row.ID})

	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedCount)
	require.NotNil(t, f.logHook.LastEntry())
	assert.Equal(t, "Service.invalidate.Error", f.logHook.LastEntry().Message)
}

// -- CreateTransaction tests --

func TestCreateTransaction_AppliesAndNotifies(t *testing.T) {
	f := newFixture(t)
	owner, accountA := newID(), newID()
	created := stored(owner, accountA, ledger.TransactionTypeExpense, "12.50")

	f.accounts.EXPECT().FindByID(mock.Anything, accountA).Return(&account.Account{ID: accountA, OwnerID: owner}, nil)
	f.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(created, nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, accountA, mock.MatchedBy(decEq("-12.50"))).Return(nil)

	result, err := f.svc.Transaction.CreateTransaction(context.Background(), owner, NewTransaction{
		AccountID: accountA,
		Type:      ledger.TransactionTypeExpense,
		Amount:    dec("12.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	sent := f.notifier.invalidations()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.ReasonTransactionCreated, sent[0].Reason)
	assert.Equal(t, []uuid.UUID{accountA}, sent[0].AccountIDs)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Transaction.CreateTransaction(context.Background(), newID(), NewTransaction{
		AccountID: newID(),
		Type:      ledger.TransactionTypeIncome,
		Amount:    dec("0"),
	})

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Empty(t, f.notifier.invalidations())
}

// -- UpdateTransaction tests --

func TestUpdateTransaction_MoveNotifiesBothAccounts(t *testing.T) {
	f := newFixture(t)
	owner, from, to := newID(), newID(), newID()
	before := stored(owner, from, ledger.TransactionTypeIncome, "70")
	after := *before
	after.AccountID = to

	f.transactions.EXPECT().FindByIDForUpdate(mock.Anything, before.ID).Return(before, nil)
	f.accounts.EXPECT().FindByID(mock.Anything, to).Return(&account.Account{ID: to, OwnerID: owner}, nil)
	f.transactions.EXPECT().Update(mock.Anything, before.ID, mock.Anything).Return(&after, nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, from, mock.MatchedBy(decEq("-70"))).Return(nil)
	f.accounts.EXPECT().IncrementBalance(mock.Anything, to, mock.MatchedBy(decEq("70"))).Return(nil)

	result, err := f.svc.Transaction.UpdateTransaction(context.Background(), owner, before.ID, TransactionPatch{
		AccountID: omit.From(to),
	})

	require.NoError(t, err)
	assert.Equal(t, to, result.AccountID)
	sent := f.notifier.invalidations()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.ReasonTransactionUpdated, sent[0].Reason)
	assert.ElementsMatch(t, []uuid.UUID{from, to}, sent[0].AccountIDs)
}

func TestUpdateTransaction_ForeignTransaction(t *testing.T) {
	f := newFixture(t)
	owner := newID()
	foreign := stored(newID(), newID(), ledger.TransactionTypeIncome, "1")

	f.transactions.EXPECT().FindByIDForUpdate(mock.Anything, foreign.ID).Return(foreign, nil)

	_, err := f.svc.Transaction.UpdateTransaction(context.Background(), owner, foreign.ID, TransactionPatch{
		Amount: omit.From(dec("2")),
	})

	assert.ErrorIs(t, err, ledger.ErrForbidden)
	_, rollbacks := f.committer.counts()
	assert.Equal(t, 1, rollbacks)
}

// -- ListTransactions tests --

func TestListTransactions_Defaults(t *testing.T) {
	f := newFixture(t)
	owner, accountA := newID(), newID()
	rows := []*transaction.Transaction{stored(owner, accountA, ledger.TransactionTypeIncome, "1")}

	f.accounts.EXPECT().FindByID(mock.Anything, accountA).Return(&account.Account{ID: accountA, OwnerID: owner}, nil)
	f.transactions.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter *transaction.TransactionFilter) bool {
			return filter.SortField == transaction.SortByDate && filter.SortDesc &&
				filter.Limit == 10 && filter.Offset == 0 && filter.AccountID == accountA
		})).
		Return(&transaction.TransactionListResult{Transactions: rows, Total: 21}, nil)

	page, err := f.svc.Transaction.ListTransactions(context.Background(), owner, accountA, TransactionQuery{})

	require.NoError(t, err)
	assert.Len(t, page.Transactions, 1)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListTransactions_PagingAndSort(t *testing.T) {
	f := newFixture(t)
	owner, accountA := newID(), newID()

	f.accounts.EXPECT().FindByID(mock.Anything, accountA).Return(&account.Account{ID: accountA, OwnerID: owner}, nil)
	f.transactions.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter *transaction.TransactionFilter) bool {
			return filter.SortField == transaction.SortByAmount && !filter.SortDesc &&
				filter.Limit == 100 && filter.Offset == 200 && filter.Search == "rent"
		})).
		Return(&transaction.TransactionListResult{}, nil)

	page, err := f.svc.Transaction.ListTransactions(context.Background(), owner, accountA, TransactionQuery{
		Search:    "  rent ",
		SortField: "AMOUNT",
		Page:      3,
		PageSize:  500,
	})

	require.NoError(t, err)
	assert.Empty(t, page.Transactions)
	assert.Zero(t, page.TotalPages)
	assert.Equal(t, 100, page.PageSize)
}

func TestListTransactions_InvalidSort(t *testing.T) {
	f := newFixture(t)
	owner, accountA := newID(), newID()

	f.accounts.EXPECT().FindByID(mock.Anything, accountA).Return(&account.Account{ID: accountA, OwnerID: owner}, nil)

	_, err := f.svc.Transaction.ListTransactions(context.Background(), owner, accountA, TransactionQuery{SortField: "owner"})

	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	assert.NotErrorIs(t, err, ledger.ErrInvalidOperation)
}

func TestListTransactions_ForeignAccount(t *testing.T) {
	f := newFixture(t)
	accountA := newID()

	f.accounts.EXPECT().FindByID(mock.Anything, accountA).Return(&account.Account{ID: accountA, OwnerID: newID()}, nil)

	_, err := f.svc.Transaction.ListTransactions(context.Background(), newID(), accountA, TransactionQuery{})

	assert.ErrorIs(t, err, ledger.ErrForbidden)
}
