package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	AccountID string `json:"accountID" format:"uuid" doc:"Account UUID"`
	Search    string `json:"search,omitempty" maxLength:"100" doc:"Case-insensitive match on description"`
	Type      string `json:"type,omitempty" enum:"INCOME,EXPENSE" doc:"Only transactions of this type"`
	Recurring *bool  `json:"recurring,omitempty" doc:"Only recurring (true) or one-off (false) transactions"`
	SortField string `json:"sortField,omitempty" enum:"date,amount,category" doc:"Sort column, defaults to date"`
	SortOrder string `json:"sortOrder,omitempty" enum:"asc,desc" doc:"Sort direction, dates default to newest first"`
	Page      int    `json:"page,omitempty" minimum:"0" doc:"1-based page number"`
	PageSize  int    `json:"pageSize,omitempty" minimum:"0" maximum:"100" doc:"Page size, default 10"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions"`
	Total        int           `json:"total" doc:"Number of transactions matching the filter"`
	Page         int           `json:"page" doc:"Page returned"`
	PageSize     int           `json:"pageSize" doc:"Page size used"`
	TotalPages   int           `json:"totalPages" doc:"Number of pages at this page size"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID, accountID uuid.UUID, query service.TransactionQuery) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Searches, filters, sorts and pages one account's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (uuid.UUID, service.TransactionQuery, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return uuid.Nil, service.TransactionQuery{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	query := service.TransactionQuery{
		Search:    input.Body.Search,
		Recurring: input.Body.Recurring,
		SortField: input.Body.SortField,
		SortOrder: input.Body.SortOrder,
		Page:      input.Body.Page,
		PageSize:  input.Body.PageSize,
	}
	if input.Body.Type != "" {
		t := ledger.TransactionType(input.Body.Type)
		query.Type = &t
	}
	return accountID, query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}

	accountID, query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, ownerID, accountID, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
	}
	for i := range page.Transactions {
		resp.Transactions[i] = fromService(&page.Transactions[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
