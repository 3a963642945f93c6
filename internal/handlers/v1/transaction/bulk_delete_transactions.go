package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// BulkDeleteTransactionsBody is the request body for deleting transactions.
type BulkDeleteTransactionsBody struct {
	IDs []string `json:"ids" maxItems:"1000" doc:"Transaction UUIDs. Unknown or foreign ids are skipped."`
}

type BulkDeleteTransactionsInput struct {
	Body BulkDeleteTransactionsBody
}

// BulkDeleteTransactionsResponse reports what was removed.
type BulkDeleteTransactionsResponse struct {
	Success            bool     `json:"success" doc:"Always true on a 200 response"`
	DeletedCount       int      `json:"deletedCount" doc:"Number of transactions removed"`
	AffectedAccountIDs []string `json:"affectedAccountIDs" doc:"Accounts whose balance was adjusted"`
}

type BulkDeleteTransactionsOutput struct {
	Body BulkDeleteTransactionsResponse
}

type transactionDeleter interface {
	BulkDeleteTransactions(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (*service.BulkDeleteResult, error)
}

// BulkDeleteTransactionsHandler handles POST /v1/transaction/bulk-delete.
type BulkDeleteTransactionsHandler struct {
	TransactionService transactionDeleter
}

func NewBulkDeleteTransactionsHandler(svc transactionDeleter) *BulkDeleteTransactionsHandler {
	return &BulkDeleteTransactionsHandler{TransactionService: svc}
}

func (h *BulkDeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/bulk-delete",
		Summary:     "Delete transactions",
		Description: "Deletes the caller's transactions among ids in one atomic unit and reverses their effect on balances.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseBulkDeleteInput(input *BulkDeleteTransactionsInput) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(input.Body.IDs))
	for i, raw := range input.Body.IDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, fmt.Sprintf("invalid ids[%d]", i), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *BulkDeleteTransactionsHandler) handle(ctx context.Context, input *BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}

	ids, err := parseBulkDeleteInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("bulkDeleteMs")
		logData.AddData("requestedCount", len(ids))
	}
	result, err := h.TransactionService.BulkDeleteTransactions(ctx, ownerID, ids)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to delete transactions")
	}

	if logData != nil {
		logData.AddData("deletedCount", result.DeletedCount)
	}

	affected := make([]string, len(result.AffectedAccountIDs))
	for i, id := range result.AffectedAccountIDs {
		affected[i] = id.String()
	}

	return &BulkDeleteTransactionsOutput{Body: BulkDeleteTransactionsResponse{
		Success:            result.Success,
		DeletedCount:       result.DeletedCount,
		AffectedAccountIDs: affected,
	}}, nil
}
