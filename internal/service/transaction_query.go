package service

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// TransactionQuery is the table view of an account's transactions: a search
// over descriptions, type and recurrence filters, one sort column and a page.
type TransactionQuery struct {
	Search    string
	Type      *ledger.TransactionType
	Recurring *bool
	SortField string
	// SortOrder is "asc" or "desc"; date sorts default to newest first.
	SortOrder string
	// Page is 1-based.
	Page     int
	PageSize int
}

// TransactionPage is one page of a TransactionQuery.
type TransactionPage struct {
	Transactions []Transaction
	Total        int
	Page         int
	PageSize     int
	TotalPages   int
}

// toFilter validates the query and fills in defaults.
func (q TransactionQuery) toFilter(ownerID, accountID uuid.UUID) (*transaction.TransactionFilter, int, int, error) {
	sortField := transaction.SortByDate
	if q.SortField != "" {
		sortField = transaction.SortField(strings.ToLower(q.SortField))
		if !sortField.Valid() {
			return nil, 0, 0, fmt.Errorf("%w: sort field %q", ledger.ErrInvalidInput, q.SortField)
		}
	}

	var sortDesc bool
	switch strings.ToLower(q.SortOrder) {
	case "":
		sortDesc = sortField == transaction.SortByDate
	case "asc":
		sortDesc = false
	case "desc":
		sortDesc = true
	default:
		return nil, 0, 0, fmt.Errorf("%w: sort order %q", ledger.ErrInvalidInput, q.SortOrder)
	}

	if q.Type != nil && !q.Type.Valid() {
		return nil, 0, 0, fmt.Errorf("%w: %q", ledger.ErrInvalidTransactionKind, *q.Type)
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	return &transaction.TransactionFilter{
		OwnerID:   ownerID,
		AccountID: accountID,
		Search:    strings.TrimSpace(q.Search),
		Type:      q.Type,
		Recurring: q.Recurring,
		SortField: sortField,
		SortDesc:  sortDesc,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}, page, pageSize, nil
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
