package budget

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var _ IWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

const upsertBudgetSQL = `INSERT INTO ` + sqlconfig.BudgetsTable + ` (id, owner_id, amount)
VALUES (?, ?, ?)
ON CONFLICT (owner_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
RETURNING id, owner_id, amount, created_at, updated_at`

// Upsert sets the owner's budget, creating it on first use.
func (w *Writer) Upsert(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("uuid.NewV4: %w", err)
	}

	query := psql.RawQuery(upsertBudgetSQL, id, ownerID, amount)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*budgetRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToBudget(row), nil
}
