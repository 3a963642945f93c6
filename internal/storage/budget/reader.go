package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Budget, error) {
	query := psql.Select(
		sm.Columns("id", "owner_id", "amount", "created_at", "updated_at"),
		sm.From(sqlconfig.BudgetsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*budgetRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToBudget(row), nil
}
