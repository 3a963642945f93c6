package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one atomic unit of work. Perform must do all of its writes through
// writer; the operator commits them together or not at all.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
