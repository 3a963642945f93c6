package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Reader serves queries outside any atomic unit.
type Reader struct {
	Accounts     account.IReader
	Transactions transaction.IReader
	Budgets      budget.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Budgets:      budget.NewReader(exec),
	}
}
