package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context so repositories join it transparently.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
