package transactor

import (
	"context"
)

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type nopTransactor struct{}

// NewNopTransactor builds transactor for stores which apply every write atomically on their own
func NewNopTransactor() Transactor {
	return nopTransactor{}
}

func (nopTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}
