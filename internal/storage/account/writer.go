package account

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return findOne(ctx, w.tx, id, true)
}

// LockByOwner takes row locks on every account the owner has, in id order.
func (w *Writer) LockByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(sqlconfig.AccountsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("id")).Asc(),
		sm.ForUpdate(),
	)
	rows, err := bob.All(ctx, w.tx, query, scan.StructMapper[*accountRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}

	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = rowToAccount(row)
	}
	return result, nil
}

// Create inserts an account whose balance starts at its starting balance.
func (w *Writer) Create(ctx context.Context, create *AccountCreate) (*Account, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("uuid.NewV4: %w", err)
	}

	query := psql.Insert(
		im.Into(sqlconfig.AccountsTable, "id", "owner_id", "name", "type", "balance", "starting_balance", "is_default"),
		im.Values(
			psql.Arg(id),
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(string(create.Type)),
			psql.Arg(create.StartingBalance),
			psql.Arg(create.StartingBalance),
			psql.Arg(create.IsDefault),
		),
		im.Returning(selectColumns()...),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*accountRow]())
	if err != nil {
		return nil, sqlconfig.Classify(err)
	}
	return rowToAccount(row), nil
}

// IncrementBalance adds delta to the stored balance in a single statement.
func (w *Writer) IncrementBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := psql.Update(
		um.Table(sqlconfig.AccountsTable),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execOne(ctx, query)
}

func (w *Writer) ClearDefault(ctx context.Context, ownerID uuid.UUID) error {
	query := psql.Update(
		um.Table(sqlconfig.AccountsTable),
		um.SetCol("is_default").ToArg(false),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Where(psql.Quote("is_default")),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return sqlconfig.Classify(err)
}

func (w *Writer) SetDefault(ctx context.Context, id uuid.UUID) error {
	query := psql.Update(
		um.Table(sqlconfig.AccountsTable),
		um.SetCol("is_default").ToArg(true),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execOne(ctx, query)
}

func (w *Writer) execOne(ctx context.Context, query bob.Query) error {
	res, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return sqlconfig.Classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("%w: account", ledger.ErrNotFound)
	}
	return nil
}
