// internal/repo/todo_test.go
package repo

import (
    "context"
    "testing"

    "github.com/BuzzLyutic/todo-api/internal/model"
    "github.com/jackc/pgx/v5/pgxpool"
)

func seedOwner(t *testing.T, pool *pgxpool.Pool, email string) int64 {
    var id int64
    err := pool.QueryRow(context.Background(), `
        INSERT INTO users (firstname, lastname, email, password)
        VALUES ('Test', 'User', $1, 'h') RETURNING id
    `, email).Scan(&id)
    if err != nil {
        t.Fatal(err)
    }
    return id
}

func TestTodoRepo_CreateAndList(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewTodoRepo(pool)
    alice := seedOwner(t, pool, "alice@example.com")
    bob := seedOwner(t, pool, "bob@example.com")

    first, err := repo.Create(context.Background(), model.Todo{Title: "first", CreatedByID: alice})
    if err != nil {
        t.Fatal(err)
    }
    if first.ID == 0 {
        t.Error("expected non-zero ID")
    }

    second, err := repo.Create(context.Background(), model.Todo{Title: "second", CreatedByID: alice})
    if err != nil {
        t.Fatal(err)
    }

    if _, err := repo.Create(context.Background(), model.Todo{Title: "bob's", CreatedByID: bob}); err != nil {
        t.Fatal(err)
    }

    todos, err := repo.ListByOwner(context.Background(), alice)
    if err != nil {
        t.Fatal(err)
    }

    // Только свои задачи, в порядке вставки
    if len(todos) != 2 {
        t.Fatalf("expected 2 todos, got %d", len(todos))
    }
    if todos[0].ID != first.ID || todos[1].ID != second.ID {
        t.Error("expected insertion order")
    }
}

func TestTodoRepo_UpdateTitle_OwnerScoped(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewTodoRepo(pool)
    alice := seedOwner(t, pool, "alice@example.com")
    bob := seedOwner(t, pool, "bob@example.com")

    todo, err := repo.Create(context.Background(), model.Todo{Title: "mine", CreatedByID: alice})
    if err != nil {
        t.Fatal(err)
    }

    // Чужой владелец не видит задачу
    if _, err := repo.UpdateTitle(context.Background(), todo.ID, bob, "hijack"); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound for foreign owner, got %v", err)
    }

    updated, err := repo.UpdateTitle(context.Background(), todo.ID, alice, "renamed")
    if err != nil {
        t.Fatal(err)
    }
    if updated.Title != "renamed" {
        t.Errorf("expected title=renamed, got %s", updated.Title)
    }
}

func TestTodoRepo_Delete_OwnerScoped(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewTodoRepo(pool)
    alice := seedOwner(t, pool, "alice@example.com")
    bob := seedOwner(t, pool, "bob@example.com")

    todo, err := repo.Create(context.Background(), model.Todo{Title: "mine", CreatedByID: alice})
    if err != nil {
        t.Fatal(err)
    }

    if err := repo.Delete(context.Background(), todo.ID, bob); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound for foreign owner, got %v", err)
    }

    if err := repo.Delete(context.Background(), todo.ID, alice); err != nil {
        t.Fatal(err)
    }

    if err := repo.Delete(context.Background(), todo.ID, alice); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound after delete, got %v", err)
    }
}

func TestTodoRepo_IdempotencyKeys(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewTodoRepo(pool)
    alice := seedOwner(t, pool, "alice@example.com")
    bob := seedOwner(t, pool, "bob@example.com")

    if _, err := repo.GetIdempotencyKey(context.Background(), alice, "missing"); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound, got %v", err)
    }

    if err := repo.SaveIdempotencyKey(context.Background(), alice, "key-1", 42); err != nil {
        t.Fatal(err)
    }

    // Повторное сохранение того же ключа не падает
    if err := repo.SaveIdempotencyKey(context.Background(), alice, "key-1", 43); err != nil {
        t.Fatal(err)
    }

    id, err := repo.GetIdempotencyKey(context.Background(), alice, "key-1")
    if err != nil {
        t.Fatal(err)
    }
    if id != 42 {
        t.Errorf("expected first resource id 42, got %d", id)
    }

    // Ключ другого владельца - отдельное пространство имен
    if _, err := repo.GetIdempotencyKey(context.Background(), bob, "key-1"); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound for foreign owner, got %v", err)
    }

    if err := repo.SaveIdempotencyKey(context.Background(), bob, "key-1", 99); err != nil {
        t.Fatal(err)
    }

    id, err = repo.GetIdempotencyKey(context.Background(), bob, "key-1")
    if err != nil {
        t.Fatal(err)
    }
    if id != 99 {
        t.Errorf("expected bob's resource id 99, got %d", id)
    }
}

func TestTodoRepo_GetStats(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewTodoRepo(pool)
    alice := seedOwner(t, pool, "alice@example.com")
    bob := seedOwner(t, pool, "bob@example.com")

    for i := 0; i < 3; i++ {
        if _, err := repo.Create(context.Background(), model.Todo{Title: "t", CreatedByID: alice}); err != nil {
            t.Fatal(err)
        }
    }
    if _, err := repo.Create(context.Background(), model.Todo{Title: "b", CreatedByID: bob}); err != nil {
        t.Fatal(err)
    }

    stats, err := repo.GetStats(context.Background(), alice)
    if err != nil {
        t.Fatal(err)
    }
    if stats.Total != 3 {
        t.Errorf("expected total=3, got %d", stats.Total)
    }
}
