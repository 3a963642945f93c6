package transaction

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return findOne(ctx, w.tx, id, true)
}

// FindOwnedForUpdate locks and returns the rows among ids that belong to the
// owner. Unknown and foreign ids are left out rather than reported.
func (w *Writer) FindOwnedForUpdate(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("id").In(idArgs(ids)...)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("id")).Asc(),
		sm.ForUpdate(),
	)
	rows, err := bob.All(ctx, w.tx, query, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowsToTransactions(rows), nil
}

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("uuid.NewV4: %w", err)
	}

	var interval *string
	if create.RecurringInterval != nil {
		s := string(*create.RecurringInterval)
		interval = &s
	}

	query := psql.Insert(
		im.Into(sqlconfig.TransactionsTable,
			"id", "account_id", "owner_id", "type", "amount", "description", "category",
			"date", "is_recurring", "recurring_interval", "next_recurring_date",
		),
		im.Values(
			psql.Arg(id),
			psql.Arg(create.AccountID),
			psql.Arg(create.OwnerID),
			psql.Arg(string(create.Type)),
			psql.Arg(create.Amount),
			psql.Arg(create.Description),
			psql.Arg(create.Category),
			psql.Arg(create.Date),
			psql.Arg(create.IsRecurring),
			psql.Arg(interval),
			psql.Arg(create.NextRecurringDate),
		),
		im.Returning(selectColumns()...),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToTransaction(row), nil
}

// Update writes the set fields of update and returns the stored row.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(sqlconfig.TransactionsTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.AccountID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(string(v)))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(v))
	}
	if v, ok := update.IsRecurring.Get(); ok {
		queryMods = append(queryMods, um.SetCol("is_recurring").ToArg(v))
	}
	if !update.RecurringInterval.IsUnset() {
		var interval *string
		if v, ok := update.RecurringInterval.Get(); ok {
			s := string(v)
			interval = &s
		}
		queryMods = append(queryMods, um.SetCol("recurring_interval").ToArg(interval))
	}
	if !update.NextRecurringDate.IsUnset() {
		queryMods = append(queryMods, um.SetCol("next_recurring_date").ToArg(update.NextRecurringDate.Ptr()))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(selectColumns()...),
	)

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToTransaction(row), nil
}

// DeleteByIDs deletes the owner's rows among ids and reports how many went.
func (w *Writer) DeleteByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := psql.Delete(
		dm.From(sqlconfig.TransactionsTable),
		dm.Where(psql.Quote("id").In(idArgs(ids)...)),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return 0, sqlconfig.Classify(err)
	}
	return res.RowsAffected()
}
