// Package user maps identity-provider subjects onto internal owner ids.
package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

//go:generate mockery --name IDirectory --inpackage --with-expecter --filename mock_IDirectory.go
type IDirectory interface {
	Ensure(ctx context.Context, externalID, email string) (uuid.UUID, error)
}

var _ IDirectory = (*Directory)(nil)

type Directory struct {
	exec bob.Executor
}

func NewDirectory(exec bob.Executor) *Directory {
	return &Directory{exec: exec}
}

// The update only fires when a non-empty email changed, so a returning user
// produces no row version and RETURNING yields nothing.
const ensureUserSQL = `INSERT INTO ` + sqlconfig.UsersTable + ` (id, external_id, email)
VALUES (?, ?, ?)
ON CONFLICT (external_id) DO UPDATE
SET email = EXCLUDED.email
WHERE EXCLUDED.email <> '' AND ` + sqlconfig.UsersTable + `.email IS DISTINCT FROM EXCLUDED.email
RETURNING id`

const findUserSQL = `SELECT id FROM ` + sqlconfig.UsersTable + ` WHERE external_id = ?`

// Ensure returns the owner id for externalID, creating the user on first sight.
func (d *Directory) Ensure(ctx context.Context, externalID, email string) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("uuid.NewV4: %w", err)
	}

	query := psql.RawQuery(ensureUserSQL, id, externalID, email)
	ownerID, err := bob.One(ctx, d.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err == nil {
		return ownerID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, sqlconfig.Classify(err)
	}

	ownerID, err = bob.One(ctx, d.exec, psql.RawQuery(findUserSQL, externalID), scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlconfig.Classify(err)
	}
	return ownerID, nil
}
