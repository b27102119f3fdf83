package lead

import "context"

// Repository encapsulates the lead archive.
type Repository interface {
	// Insert stores a record, assigning ID and CreatedAt when unset.
	Insert(ctx context.Context, rec Record) (Record, error)
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// Dispatcher hands a record to the persistence pipeline. Enqueue must return
// quickly; the write itself happens behind it and its failure never reaches
// the visitor.
type Dispatcher interface {
	Enqueue(ctx context.Context, rec Record) error
}
