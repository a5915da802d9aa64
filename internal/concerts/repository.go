package concerts

import (
	"sonicseats/internal/shared/storage"
)

// Repository persists the whole concert catalog. The document is always read
// and written in full; there is no per-record access path.
type Repository interface {
	LoadAll() ([]Concert, error)
	SaveAll(catalog []Concert) error
}

type repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll() ([]Concert, error) {
	var catalog []Concert
	if err := r.store.Read(&catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (r *repository) SaveAll(catalog []Concert) error {
	return r.store.Write(catalog)
}
