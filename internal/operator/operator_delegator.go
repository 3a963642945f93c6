package operator

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

const queueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	beginner    Beginner
	queue       chan ActionItem
	numWorkers  int
	unitTimeout time.Duration
	logger      logrus.FieldLogger

	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(b Beginner, numWorkers int, unitTimeout time.Duration, logger logrus.FieldLogger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &OperatorDelegator{
		beginner:    b,
		queue:       make(chan ActionItem, queueSize),
		numWorkers:  numWorkers,
		unitTimeout: unitTimeout,
		logger:      logger,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.beginner, d.queue, d.unitTimeout, d.logger.WithField("worker", i))
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains the queue and waits for in-flight units to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process runs action as one atomic unit and returns its outcome. If ctx ends
// first, Process returns ctx.Err() and the unit still commits or rolls back on
// its own.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	return awaitResponse(ctx, respCh)
}

// awaitResponse prefers a finished unit's outcome over ctx ending, so a unit
// that committed is never reported as cancelled.
func awaitResponse(ctx context.Context, respCh <-chan ActionItemResponse) error {
	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		select {
		case resp := <-respCh:
			return resp.err
		default:
			return ctx.Err()
		}
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
