package services

import "context"

// TxRunner runs fn atomically. The production implementation is a mongo
// session transaction; tests substitute a pass-through.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
