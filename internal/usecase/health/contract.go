package health

import "context"

// DBPinger checks catalog store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker checks that the course index exists.
type IndexChecker interface {
	IndexExists(ctx context.Context, name string) (bool, error)
}
