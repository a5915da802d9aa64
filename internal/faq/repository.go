package faq

import (
	"sonicseats/internal/shared/storage"
)

type Repository interface {
	LoadAll() ([]FAQ, error)
}

type repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll() ([]FAQ, error) {
	var faqs []FAQ
	if err := r.store.Read(&faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}
