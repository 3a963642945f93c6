package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// BulkDeleteTransactions deletes the owner's transactions among IDs and
// reverses their effect on account balances. IDs that do not exist or belong
// to someone else are skipped.
type BulkDeleteTransactions struct {
	OwnerID uuid.UUID
	IDs     []uuid.UUID

	DeletedCount       int
	AffectedAccountIDs []uuid.UUID
}

func (b *BulkDeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if b.OwnerID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	b.DeletedCount = 0
	b.AffectedAccountIDs = nil

	ids := UniqueIDs(b.IDs)
	if len(ids) == 0 {
		return nil
	}

	// Row locks make an overlapping delete wait here and then find the rows gone.
	rows, err := writer.Transaction.FindOwnedForUpdate(ctx, b.OwnerID, ids)
	if err != nil {
		return ledger.WrapStorage(ledger.StageFetch, err)
	}
	if len(rows) == 0 {
		return nil
	}

	changes := make([]ledger.Change, len(rows))
	fetchedIDs := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		changes[i] = ledger.Remove(row.Entry())
		fetchedIDs[i] = row.ID
	}

	deltas, err := ledger.ReconcileDelta(changes)
	if err != nil {
		return err
	}

	deleted, err := writer.Transaction.DeleteByIDs(ctx, b.OwnerID, fetchedIDs)
	if err != nil {
		return ledger.WrapStorage(ledger.StageApply, err)
	}
	if deleted != int64(len(rows)) {
		return &ledger.StorageError{
			Stage: ledger.StageApply,
			Err:   fmt.Errorf("deleted %d of %d locked transactions", deleted, len(rows)),
		}
	}

	if err := applyDeltas(ctx, writer, deltas); err != nil {
		return err
	}

	b.DeletedCount = len(rows)
	b.AffectedAccountIDs = deltas.AccountIDs()
	return nil
}

// UniqueIDs drops duplicates and uuid.Nil, keeping first-seen order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
