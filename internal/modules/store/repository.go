package store

import "context"

// Repository defines the interface for store data storage.
type Repository interface {
	Create(ctx context.Context, s *Store) error
	Update(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error)
}
