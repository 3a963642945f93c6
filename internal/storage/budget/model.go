package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget is an owner's monthly spending limit.
type Budget struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IReader returns ledger.ErrNotFound when the owner has no budget.
type IReader interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Budget, error)
}

//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	Upsert(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*Budget, error)
}

type budgetRow struct {
	ID        uuid.UUID       `db:"id"`
	OwnerID   uuid.UUID       `db:"owner_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func rowToBudget(row *budgetRow) *Budget {
	return &Budget{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
