package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// TodoRepository определяет интерфейс для работы с задачами пользователя
type TodoRepository interface {
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	UpdateTitle(ctx context.Context, id, ownerID int64, title string) (model.Todo, error)
	Delete(ctx context.Context, id, ownerID int64) error
	SaveIdempotencyKey(ctx context.Context, ownerID int64, key string, resourceID int64) error
	GetIdempotencyKey(ctx context.Context, ownerID int64, key string) (int64, error)
	GetStats(ctx context.Context, ownerID int64) (Stats, error)
}

type Stats struct {
	Total int64 `json:"total"`
}
