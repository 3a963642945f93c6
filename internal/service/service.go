package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

const notifyTimeout = 2 * time.Second

// processor runs an action as one atomic unit.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Budget      *BudgetService
}

// NewService wires the services onto the operator for writes and the reader
// for queries. notifier may be nil.
func NewService(op processor, reader *storage.Reader, notifier notify.Notifier, logger logrus.FieldLogger) *Service {
	inv := invalidator{notifier: notifier, logger: logger}
	return &Service{
		Transaction: NewTransactionService(op, reader, inv),
		Account:     NewAccountService(op, reader, inv),
		Budget:      NewBudgetService(op, reader, inv),
	}
}

// invalidator sends post-commit invalidations. Delivery failures are logged,
// never returned: the mutation has already committed.
type invalidator struct {
	notifier notify.Notifier
	logger   logrus.FieldLogger
}

func (i invalidator) send(ctx context.Context, inv notify.Invalidation) {
	if i.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("notifyMs")
	}
	err := i.notifier.Invalidate(ctx, inv)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil && i.logger != nil {
		i.logger.WithError(err).WithFields(logrus.Fields{
			"reason":  inv.Reason,
			"ownerID": inv.OwnerID.String(),
		}).Warn("Service.invalidate.Error")
	}
}
