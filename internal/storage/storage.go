package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// Storage owns the connection pool. Reads go through Reader; every mutation
// runs inside the Writer returned by Write.
type Storage struct {
	sqlDB  *sql.DB
	db     bob.DB
	Reader *Reader
	Users  *user.Directory
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("pgx", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return NewStorageFromDB(db), nil
}

func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		sqlDB:  db,
		db:     bobDB,
		Reader: NewReader(bobDB),
		Users:  user.NewDirectory(bobDB),
	}
}

// Write begins an atomic unit. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(&tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
