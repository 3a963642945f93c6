package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

var (
	ErrActionPanicked = errors.New("action panicked")
	ErrStopped        = errors.New("operator stopped")
)

// Beginner opens atomic units.
type Beginner interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	beginner    Beginner
	queue       chan ActionItem
	unitTimeout time.Duration
	logger      logrus.FieldLogger
}

func NewOperator(b Beginner, queue chan ActionItem, unitTimeout time.Duration, logger logrus.FieldLogger) *Operator {
	return &Operator{
		beginner:    b,
		queue:       queue,
		unitTimeout: unitTimeout,
		logger:      logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

// processItem runs one action as one atomic unit: begin, perform, then commit,
// with a rollback on any failure.
func (o *Operator) processItem(item ActionItem) (err error) {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	ctx := item.ctx
	if o.unitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.unitTimeout)
		defer cancel()
	}

	writer, err := o.beginner.Write(ctx)
	if err != nil {
		return ledger.WrapStorage(ledger.StageBegin, err)
	}

	defer func() {
		if r := recover(); r != nil {
			o.rollback(ctx, writer, item.action)
			err = fmt.Errorf("%w: %T: %v", ErrActionPanicked, item.action, r)
		}
	}()

	if err = item.action.Perform(ctx, writer); err != nil {
		o.rollback(ctx, writer, item.action)
		return ledger.WrapStorage(ledger.StageApply, err)
	}

	if err = writer.Commit(ctx); err != nil {
		return ledger.WrapStorage(ledger.StageCommit, err)
	}

	return nil
}

func (o *Operator) rollback(ctx context.Context, writer *storage.Writer, action actions.IAction) {
	// The unit's own context may be the reason we are rolling back.
	rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := writer.Rollback(rollbackCtx); err != nil {
		o.logger.WithError(err).WithField("action", fmt.Sprintf("%T", action)).Error("Operator.rollback.Error")
	}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
