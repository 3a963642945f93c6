package ledger

import (
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Operation is the kind of mutation a Change describes.
type Operation int8

const (
	OperationAdd Operation = iota + 1
	OperationRemove
	OperationUpdate
)

func (o Operation) String() string {
	switch o {
	case OperationAdd:
		return "ADD"
	case OperationRemove:
		return "REMOVE"
	case OperationUpdate:
		return "UPDATE_FROM_TO"
	}
	return fmt.Sprintf("Operation(%d)", int8(o))
}

// Change is one input to ReconcileDelta. For OperationUpdate, Previous is the
// stored state and Entry the new one; Previous is ignored otherwise.
type Change struct {
	Operation Operation
	Entry     Entry
	Previous  Entry
}

func Add(e Entry) Change    { return Change{Operation: OperationAdd, Entry: e} }
func Remove(e Entry) Change { return Change{Operation: OperationRemove, Entry: e} }

func Update(from, to Entry) Change {
	return Change{Operation: OperationUpdate, Entry: to, Previous: from}
}

// Deltas maps an account to the amount its stored balance must be incremented by.
type Deltas map[uuid.UUID]decimal.Decimal

// AccountIDs returns the keys sorted, so increments always take row locks in the same order.
func (d Deltas) AccountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

func (d Deltas) add(accountID uuid.UUID, amount decimal.Decimal) {
	d[accountID] = d[accountID].Add(amount)
}

// ReconcileDelta computes the per-account balance delta implied by an ordered
// set of changes. It has no side effects.
func ReconcileDelta(changes []Change) (Deltas, error) {
	deltas := make(Deltas)
	for _, c := range changes {
		switch c.Operation {
		case OperationAdd:
			signed, err := SignedAmount(c.Entry)
			if err != nil {
				return nil, err
			}
			deltas.add(c.Entry.AccountID, signed)
		case OperationRemove:
			signed, err := SignedAmount(c.Entry)
			if err != nil {
				return nil, err
			}
			deltas.add(c.Entry.AccountID, signed.Neg())
		case OperationUpdate:
			from, err := SignedAmount(c.Previous)
			if err != nil {
				return nil, err
			}
			to, err := SignedAmount(c.Entry)
			if err != nil {
				return nil, err
			}
			deltas.add(c.Previous.AccountID, from.Neg())
			deltas.add(c.Entry.AccountID, to)
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, c.Operation)
		}
	}
	return deltas, nil
}
