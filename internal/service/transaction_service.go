package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	op     processor
	reader *storage.Reader
	inv    invalidator
}

func NewTransactionService(op processor, reader *storage.Reader, inv invalidator) *TransactionService {
	return &TransactionService{op: op, reader: reader, inv: inv}
}

// CreateTransaction records a transaction on one of the owner's accounts.
// The recurring-transaction scheduler creates its instances through here too.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input NewTransaction) (*Transaction, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	action := &actions.CreateTransaction{
		OwnerID:           ownerID,
		AccountID:         input.AccountID,
		Type:              input.Type,
		Amount:            input.Amount,
		Description:       input.Description,
		Category:          input.Category,
		Date:              input.Date,
		IsRecurring:       input.IsRecurring,
		RecurringInterval: input.RecurringInterval,
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	s.inv.send(ctx, notify.NewInvalidation(notify.ReasonTransactionCreated, ownerID, action.Result.AccountID))
	return transactionFromStorage(action.Result), nil
}

// UpdateTransaction applies patch to one of the owner's transactions.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	action := &actions.UpdateTransaction{
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Patch:         patch.toStorage(),
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	accountIDs := []uuid.UUID{action.Result.AccountID}
	if action.PreviousAccountID != action.Result.AccountID {
		accountIDs = append(accountIDs, action.PreviousAccountID)
	}
	s.inv.send(ctx, notify.NewInvalidation(notify.ReasonTransactionUpdated, ownerID, accountIDs...))
	return transactionFromStorage(action.Result), nil
}

// BulkDeleteTransactions deletes the owner's transactions among ids in one
// atomic unit and reverses their effect on balances. IDs that are unknown or
// owned by someone else are silently skipped.
func (s *TransactionService) BulkDeleteTransactions(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (*BulkDeleteResult, error) {
	if ownerID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}

	unique := actions.UniqueIDs(ids)
	if len(unique) == 0 {
		return &BulkDeleteResult{Success: true, AffectedAccountIDs: []uuid.UUID{}}, nil
	}

	action := &actions.BulkDeleteTransactions{OwnerID: ownerID, IDs: unique}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	affected := action.AffectedAccountIDs
	if affected == nil {
		affected = []uuid.UUID{}
	}
	if action.DeletedCount > 0 {
		s.inv.send(ctx, notify.NewInvalidation(notify.ReasonTransactionsDeleted, ownerID, affected...))
	}

	return &BulkDeleteResult{
		Success:            true,
		DeletedCount:       action.DeletedCount,
		AffectedAccountIDs: affected,
	}, nil
}

// ListTransactions runs query over one of the owner's accounts.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID, accountID uuid.UUID, query TransactionQuery) (*TransactionPage, error) {
	if _, err := ownedAccount(ctx, s.reader, ownerID, accountID); err != nil {
		return nil, err
	}

	filter, page, pageSize, err := query.toFilter(ownerID, accountID)
	if err != nil {
		return nil, err
	}

	result, err := s.reader.Transactions.List(ctx, filter)
	if err != nil {
		return nil, ledger.WrapStorage(ledger.StageFetch, err)
	}

	converted := make([]Transaction, len(result.Transactions))
	for i, row := range result.Transactions {
		converted[i] = *transactionFromStorage(row)
	}

	return &TransactionPage{
		Transactions: converted,
		Total:        result.Total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages(result.Total, pageSize),
	}, nil
}
