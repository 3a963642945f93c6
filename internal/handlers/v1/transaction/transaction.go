package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                string  `json:"id" doc:"Transaction UUID"`
	AccountID         string  `json:"accountID" doc:"Account UUID"`
	Type              string  `json:"type" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Amount            string  `json:"amount" doc:"Decimal amount, always positive"`
	Description       string  `json:"description" doc:"Free-text description"`
	Category          string  `json:"category" doc:"Category label"`
	Date              string  `json:"date" doc:"RFC3339 transaction date"`
	IsRecurring       bool    `json:"isRecurring" doc:"Whether the transaction repeats"`
	RecurringInterval *string `json:"recurringInterval,omitempty" doc:"Repeat interval for recurring transactions"`
	NextRecurringDate *string `json:"nextRecurringDate,omitempty" doc:"RFC3339 date the next instance is due"`
	CreatedAt         string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx *service.Transaction) Transaction {
	out := Transaction{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format(time.RFC3339),
		IsRecurring: tx.IsRecurring,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.RecurringInterval != nil {
		interval := string(*tx.RecurringInterval)
		out.RecurringInterval = &interval
	}
	if tx.NextRecurringDate != nil {
		next := tx.NextRecurringDate.Format(time.RFC3339)
		out.NextRecurringDate = &next
	}
	return out
}
