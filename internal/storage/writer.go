package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Committer ends an atomic unit.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer is one atomic unit. Every store it exposes shares the same database
// transaction, so their writes commit or roll back together.
type Writer struct {
	tx          Committer
	Account     account.IWriter
	Transaction transaction.IWriter
	Budget      budget.IWriter
}

func NewWriter(tx *bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Budget:      budget.NewWriter(tx),
	}
}

// NewWriterFrom assembles a Writer from its parts.
func NewWriterFrom(tx Committer, accounts account.IWriter, transactions transaction.IWriter, budgets budget.IWriter) *Writer {
	return &Writer{
		tx:          tx,
		Account:     accounts,
		Transaction: transactions,
		Budget:      budgets,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
