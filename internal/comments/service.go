package comments

import (
	"context"

	"sonicseats/pkg/logger"
)

type Service interface {
	ListComments() ([]Comment, error)
	AddComment(ctx context.Context, req ContactRequest) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListComments() ([]Comment, error) {
	return s.repo.LoadAll()
}

// AddComment appends one comment to the document, creating it if absent.
func (s *service) AddComment(ctx context.Context, req ContactRequest) error {
	comments, err := s.repo.LoadAllOrInit()
	if err != nil {
		return err
	}

	comments = append(comments, Comment{
		Category:    req.Category,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})

	if err := s.repo.SaveAll(comments); err != nil {
		return err
	}

	logger.GetDefault().LogCommentSubmitted(ctx, req.Category)
	return nil
}
