package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID         string `json:"accountID" format:"uuid" doc:"Account UUID"`
	Type              string `json:"type" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Amount            string `json:"amount" doc:"Positive decimal amount"`
	Description       string `json:"description" minLength:"1" maxLength:"255" doc:"Free-text description"`
	Category          string `json:"category,omitempty" maxLength:"100" doc:"Category label"`
	Date              string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	IsRecurring       bool   `json:"isRecurring,omitempty" doc:"Whether the transaction repeats"`
	RecurringInterval string `json:"recurringInterval,omitempty" enum:"DAILY,WEEKLY,MONTHLY,YEARLY" doc:"Required when isRecurring is set"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, input service.NewTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a transaction and applies it to the account balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var interval *ledger.RecurringInterval
	if input.Body.RecurringInterval != "" {
		v := ledger.RecurringInterval(input.Body.RecurringInterval)
		interval = &v
	}

	return service.NewTransaction{
		AccountID:         accountID,
		Type:              ledger.TransactionType(input.Body.Type),
		Amount:            amount,
		Description:       input.Body.Description,
		Category:          input.Body.Category,
		Date:              date,
		IsRecurring:       input.Body.IsRecurring,
		RecurringInterval: interval,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}

	newTransaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, ownerID, newTransaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: fromService(created)}, nil
}
