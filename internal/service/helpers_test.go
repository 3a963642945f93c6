package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type recordingCommitter struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (c *recordingCommitter) Commit(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commits++
	return nil
}

func (c *recordingCommitter) Rollback(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollbacks++
	return nil
}

func (c *recordingCommitter) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commits, c.rollbacks
}

type mockBeginner struct {
	committer    *recordingCommitter
	accounts     *account.MockIWriter
	transactions *transaction.MockIWriter
	budgets      *budget.MockIWriter
}

func (b *mockBeginner) Write(context.Context) (*storage.Writer, error) {
	return storage.NewWriterFrom(b.committer, b.accounts, b.transactions, b.budgets), nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	err  error
	sent []notify.Invalidation
}

func (n *recordingNotifier) Invalidate(_ context.Context, inv notify.Invalidation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, inv)
	return n.err
}

func (n *recordingNotifier) invalidations() []notify.Invalidation {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Invalidation(nil), n.sent...)
}

type fixture struct {
	svc          *Service
	committer    *recordingCommitter
	notifier     *recordingNotifier
	logHook      *test.Hook
	accounts     *account.MockIWriter
	transactions *transaction.MockIWriter
	budgets      *budget.MockIWriter
}

// newFixture runs the services on a real operator pool whose atomic units are
// backed by mocks. The same mocks serve reads.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger, hook := test.NewNullLogger()
	f := &fixture{
		committer:    &recordingCommitter{},
		notifier:     &recordingNotifier{},
		logHook:      hook,
		accounts:     account.NewMockIWriter(t),
		transactions: transaction.NewMockIWriter(t),
		budgets:      budget.NewMockIWriter(t),
	}

	delegator := operator.NewOperatorDelegator(&mockBeginner{
		committer:    f.committer,
		accounts:     f.accounts,
		transactions: f.transactions,
		budgets:      f.budgets,
	}, 2, time.Second, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	reader := &storage.Reader{Accounts: f.accounts, Transactions: f.transactions, Budgets: f.budgets}
	f.svc = NewService(delegator, reader, f.notifier, logger)
	return f
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(want string) func(decimal.Decimal) bool {
	return func(got decimal.Decimal) bool {
		return got.Equal(dec(want))
	}
}

var errConnReset = errors.New("connection reset by peer")
