package service

import (
	"context"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

type TodoService struct {
	repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, title, idempKey string) (model.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return model.Todo{}, ErrValidation
	}

	if idempKey != "" { // Обеспечение идемпотентности - если ключ с ресурсом уже существует, мы не создаем его еще раз
		if existingID, err := s.repo.GetIdempotencyKey(ctx, ownerID, idempKey); err == nil {
			existing, err := s.repo.Get(ctx, existingID)
			// Ключ чужого владельца не должен отдавать его задачу
			if err == nil && existing.CreatedByID == ownerID {
				return existing, nil
			}
		}
	}

	todo, err := s.repo.Create(ctx, model.Todo{Title: title, CreatedByID: ownerID})
	if err != nil {
		return todo, err
	}

	// Сохранение нового ключа
	if idempKey != "" {
		s.repo.SaveIdempotencyKey(ctx, ownerID, idempKey, todo.ID)
	}

	return todo, nil
}

// List отдает только задачи владельца, в порядке вставки
func (s *TodoService) List(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TodoService) UpdateTitle(ctx context.Context, id, ownerID int64, title string) (model.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return model.Todo{}, ErrValidation
	}
	return s.repo.UpdateTitle(ctx, id, ownerID, title)
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func (s *TodoService) GetStats(ctx context.Context, ownerID int64) (repo.Stats, error) {
	return s.repo.GetStats(ctx, ownerID)
}
