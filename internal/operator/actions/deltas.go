package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// applyDeltas increments each account's stored balance by its delta, in the
// order Deltas.AccountIDs gives so concurrent units lock rows alike.
func applyDeltas(ctx context.Context, writer *storage.Writer, deltas ledger.Deltas) error {
	for _, accountID := range deltas.AccountIDs() {
		delta := deltas[accountID]
		if delta.IsZero() {
			continue
		}
		if err := writer.Account.IncrementBalance(ctx, accountID, delta); err != nil {
			return ledger.WrapStorage(ledger.StageApply, err)
		}
	}
	return nil
}

// reconcileAndApply runs the reconciler over changes and applies the result.
func reconcileAndApply(ctx context.Context, writer *storage.Writer, changes ...ledger.Change) (ledger.Deltas, error) {
	deltas, err := ledger.ReconcileDelta(changes)
	if err != nil {
		return nil, err
	}
	return deltas, applyDeltas(ctx, writer, deltas)
}
