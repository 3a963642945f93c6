package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return findOne(ctx, r.exec, id, false)
}

// List returns one page of the filtered transactions together with the total
// number of matches.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) (*TransactionListResult, error) {
	where := filterWhere(filter)

	countMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
		sm.From(sqlconfig.TransactionsTable),
	}, where...)
	total, err := bob.One(ctx, r.exec, psql.Select(countMods...), scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	if total == 0 {
		return &TransactionListResult{}, nil
	}

	sortField := filter.SortField
	if !sortField.Valid() {
		sortField = SortByDate
	}
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.TransactionsTable),
	}, where...)
	if filter.SortDesc {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(string(sortField))).Desc(),
			sm.OrderBy(psql.Quote("id")).Desc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(string(sortField))).Asc(),
			sm.OrderBy(psql.Quote("id")).Asc(),
		)
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}

	return &TransactionListResult{
		Transactions: rowsToTransactions(rows),
		Total:        int(total),
	}, nil
}

func (r *Reader) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	count, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, sqlconfig.Classify(err)
	}
	return int(count), nil
}

// SumExpenses totals the EXPENSE amounts on an account dated in [from, to).
func (r *Reader) SumExpenses(ctx context.Context, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(ledger.TransactionTypeExpense)))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date").LT(psql.Arg(to))),
	)
	sum, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, sqlconfig.Classify(err)
	}
	return sum, nil
}

func filterWhere(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	where := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(filter.AccountID))),
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		where = append(where, sm.Where(psql.Raw("description ILIKE ?", "%"+escapeLike(search)+"%")))
	}
	if filter.Type != nil {
		where = append(where, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
	}
	if filter.Recurring != nil {
		where = append(where, sm.Where(psql.Quote("is_recurring").EQ(psql.Arg(*filter.Recurring))))
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func findOne(ctx context.Context, exec bob.Executor, id uuid.UUID, forUpdate bool) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToTransaction(row), nil
}

func selectColumns() []any {
	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = psql.Quote(c)
	}
	return cols
}

func idArgs(ids []uuid.UUID) []bob.Expression {
	args := make([]bob.Expression, len(ids))
	for i, id := range ids {
		args[i] = psql.Arg(id)
	}
	return args
}
