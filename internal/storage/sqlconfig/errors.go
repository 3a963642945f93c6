package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

var checkConstraints = map[string]error{
	"transactions_recurrence_chk":           ledger.ErrInvalidRecurrence,
	"transactions_recurring_interval_check": ledger.ErrInvalidRecurrence,
	"transactions_type_check":               ledger.ErrInvalidTransactionKind,
}

// Classify maps driver errors onto ledger sentinels where the database is the
// one enforcing the rule. Everything else is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgNumericOutOfRange:
		return fmt.Errorf("%w: %s", ledger.ErrInvalidAmount, pgErr.Message)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ledger.ErrNotFound, pgErr.ConstraintName)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ledger.ErrForbidden, pgErr.ConstraintName)
	case pgCheckViolation:
		if sentinel, ok := checkConstraints[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", sentinel, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", ledger.ErrInvalidAmount, pgErr.ConstraintName)
	}
	return err
}
