package suggest

import "context"

// Repository defines the storage contract for autocomplete lookups.
type Repository interface {
	Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error)
}
