package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

func TestUpsertBudget(t *testing.T) {
	writer, stores := newTestWriter(t)
	owner := newID()

	stores.budgets.EXPECT().Upsert(mock.Anything, owner, mock.MatchedBy(decEq("1200"))).
		Return(&budget.Budget{ID: newID(), OwnerID: owner, Amount: dec("1200")}, nil)

	action := &UpsertBudget{OwnerID: owner, Amount: dec("1200")}
	assert.NoError(t, action.Perform(context.Background(), writer))
	assert.True(t, action.Result.Amount.Equal(dec("1200")))
}

func TestUpsertBudget_RejectsNonPositive(t *testing.T) {
	writer, _ := newTestWriter(t)

	action := &UpsertBudget{OwnerID: newID(), Amount: dec("0")}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ledger.ErrInvalidAmount)
}
