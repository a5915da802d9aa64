package comments

import (
	"errors"
	"io/fs"

	"sonicseats/internal/shared/storage"
)

// Repository persists the comments document.
type Repository interface {
	// LoadAll reads the document, failing if it does not exist.
	LoadAll() ([]Comment, error)
	// LoadAllOrInit reads the document, starting from an empty array when the
	// file has not been created yet. Submission uses this path so the first
	// comment ever creates the file.
	LoadAllOrInit() ([]Comment, error)
	SaveAll(comments []Comment) error
}

type repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll() ([]Comment, error) {
	var comments []Comment
	if err := r.store.Read(&comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *repository) LoadAllOrInit() ([]Comment, error) {
	comments, err := r.LoadAll()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Comment{}, nil
		}
		return nil, err
	}
	return comments, nil
}

func (r *repository) SaveAll(comments []Comment) error {
	return r.store.Write(comments)
}
