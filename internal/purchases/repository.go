package purchases

import (
	"sonicseats/internal/shared/storage"
)

// Repository persists the purchase ledger. The ledger is append-only from the
// service's point of view, but like every document here it is rewritten in
// full on each commit.
type Repository interface {
	LoadAll() ([]Purchase, error)
	SaveAll(ledger []Purchase) error
}

type repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll() ([]Purchase, error) {
	var ledger []Purchase
	if err := r.store.Read(&ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *repository) SaveAll(ledger []Purchase) error {
	return r.store.Write(ledger)
}
