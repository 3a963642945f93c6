package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const defaultListLimit = 20

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := defaultListLimit
	offset := 0
	var ownerID uuid.UUID
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
		ownerID = filter.OwnerID
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.AccountsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Limit(limit + 1),
		sm.Offset(offset),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	}
	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*accountRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}

	if len(rows) == 0 {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = rowToAccount(row)
	}
	return &AccountListResult{Accounts: result, NextCursor: nextCursor}, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return findOne(ctx, r.exec, id, false)
}

func (r *Reader) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(sqlconfig.AccountsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	count, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, sqlconfig.Classify(err)
	}
	return int(count), nil
}

func findOne(ctx context.Context, exec bob.Executor, id uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.AccountsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[*accountRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToAccount(row), nil
}

func selectColumns() []any {
	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = psql.Quote(c)
	}
	return cols
}
