package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

type TodoRepo struct {
	pool *pgxpool.Pool
}

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepo {
	return &TodoRepo{
		pool: pool,
	}
}

func (r *TodoRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, created_by_id)
		VALUES ($1, $2)
		RETURNING id, title, created_by_id, created_at, updated_at
	`, t.Title, t.CreatedByID).Scan(
		&t.ID, &t.Title, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, mapError(err)
}

func (r *TodoRepo) Get(ctx context.Context, id int64) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, created_by_id, created_at, updated_at
		FROM todos
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Title, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, created_by_id, created_at, updated_at
		FROM todos
		WHERE created_by_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// UpdateTitle меняет заголовок только у своей задачи - чужой id выглядит как not found
func (r *TodoRepo) UpdateTitle(ctx context.Context, id, ownerID int64, title string) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET title = $3, updated_at = now()
		WHERE id = $1 AND created_by_id = $2
		RETURNING id, title, created_by_id, created_at, updated_at
	`, id, ownerID, title).Scan(
		&t.ID, &t.Title, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) Delete(ctx context.Context, id, ownerID int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM todos WHERE id = $1 AND created_by_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

// SaveIdempotencyKey привязывает ключ к владельцу - одинаковые ключи разных
// пользователей это разные записи
func (r *TodoRepo) SaveIdempotencyKey(ctx context.Context, ownerID int64, key string, resourceID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO idempotency_keys (owner_id, key, resource_id) VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, key) DO NOTHING
	`, ownerID, key, resourceID)
	return err
}

func (r *TodoRepo) GetIdempotencyKey(ctx context.Context, ownerID int64, key string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		SELECT resource_id from idempotency_keys WHERE owner_id = $1 AND key = $2
	`, ownerID, key).Scan(&id)

	if err == pgx.ErrNoRows {
		return 0, ErrorNotFound
	}
	return id, err
}

func (r *TodoRepo) GetStats(ctx context.Context, ownerID int64) (Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM todos WHERE created_by_id = $1
	`, ownerID).Scan(&s.Total)
	return s, err
}
