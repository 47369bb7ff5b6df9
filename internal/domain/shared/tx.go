package shared

import "context"

// TxManager runs a function inside one storage transaction. Repositories
// participating in the transaction pick it up from the context, so a
// multi-aggregate operation (receipt + order + stock) commits or rolls back
// as a whole.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTxManager runs the function without a transaction. Useful in tests of
// logic that does not care about atomicity.
type NopTxManager struct{}

// Do implements TxManager
func (NopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
