package systemlog

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// List returns entries newest first.
	List(ctx context.Context, limit int) ([]*Entry, error)
}
