package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/herr"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateTransactionBody holds the fields to change. Absent fields keep their value.
type UpdateTransactionBody struct {
	AccountID         *string `json:"accountID,omitempty" format:"uuid" doc:"Move the transaction to this account"`
	Type              *string `json:"type,omitempty" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Amount            *string `json:"amount,omitempty" doc:"Positive decimal amount"`
	Description       *string `json:"description,omitempty" minLength:"1" maxLength:"255" doc:"Free-text description"`
	Category          *string `json:"category,omitempty" maxLength:"100" doc:"Category label"`
	Date              *string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date"`
	IsRecurring       *bool   `json:"isRecurring,omitempty" doc:"Whether the transaction repeats. Turning it off clears the interval."`
	RecurringInterval *string `json:"recurringInterval,omitempty" enum:"DAILY,WEEKLY,MONTHLY,YEARLY" doc:"Repeat interval"`
}

// UpdateTransactionInput is the Huma input for a partial transaction update.
type UpdateTransactionInput struct {
	TransactionID string `path:"transactionID" format:"uuid" doc:"Transaction UUID"`
	Body          UpdateTransactionBody
}

// UpdateTransactionOutput returns the updated transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, ownerID, transactionID uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{transactionID}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{transactionID}",
		Summary:     "Update transaction",
		Description: "Changes a transaction and moves its balance effect to match.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionPatch, error) {
	var patch service.TransactionPatch

	transactionID, err := uuid.FromString(input.TransactionID)
	if err != nil {
		return uuid.Nil, patch, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
	}

	body := input.Body
	if body.AccountID != nil {
		accountID, err := uuid.FromString(*body.AccountID)
		if err != nil {
			return uuid.Nil, patch, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		patch.AccountID = omit.From(accountID)
	}
	if body.Type != nil {
		patch.Type = omit.From(ledger.TransactionType(*body.Type))
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return uuid.Nil, patch, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = omit.From(amount)
	}
	if body.Description != nil {
		patch.Description = omit.From(*body.Description)
	}
	if body.Category != nil {
		patch.Category = omit.From(*body.Category)
	}
	if body.Date != nil {
		date, err := time.Parse(time.RFC3339, *body.Date)
		if err != nil {
			return uuid.Nil, patch, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date = omit.From(date)
	}
	if body.IsRecurring != nil {
		patch.IsRecurring = omit.From(*body.IsRecurring)
	}
	if body.RecurringInterval != nil {
		patch.RecurringInterval = omitnull.From(ledger.RecurringInterval(*body.RecurringInterval))
	}

	return transactionID, patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := auth.OwnerFromContext(ctx)
	if err != nil {
		return nil, herr.FromService(err, "unauthenticated")
	}

	transactionID, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
		logData.AddData("transactionID", transactionID.String())
	}
	updated, err := h.TransactionService.UpdateTransaction(ctx, ownerID, transactionID, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, herr.FromService(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
