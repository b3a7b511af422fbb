package todos

import (
	"context"
	"fmt"

	"github.com/xyz-asif/azul/internal/pkg/logger"
	apperrors "github.com/xyz-asif/azul/pkg/errors"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every todo, latest due date first.
func (s *Service) List(ctx context.Context) ([]Todo, error) {
	return s.store.FindAll(ctx)
}

// FindByID returns nil without an error when the todo does not exist.
func (s *Service) FindByID(ctx context.Context, id string) (*Todo, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *TodoRequest) (*Todo, error) {
	todo := &Todo{}
	req.apply(todo)

	if err := s.store.Save(ctx, todo); err != nil {
		return nil, err
	}

	logger.Debug("todo created", "id", todo.ID.Hex())
	return todo, nil
}

// Update overwrites title, description and due date. Completion is kept.
func (s *Service) Update(ctx context.Context, id string, req *TodoRequest) (*Todo, error) {
	todo, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(todo)
	if err := s.store.Save(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// SetCompletion stores the given completion state as-is; it is not a flip.
func (s *Service) SetCompletion(ctx context.Context, id string, completed bool) (*Todo, error) {
	todo, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Completed = completed
	if err := s.store.Save(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("todo %s: %w", id, apperrors.ErrNotFound)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	logger.Debug("todo deleted", "id", id)
	return nil
}

func (s *Service) mustFind(ctx context.Context, id string) (*Todo, error) {
	todo, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, fmt.Errorf("todo %s: %w", id, apperrors.ErrNotFound)
	}
	return todo, nil
}
