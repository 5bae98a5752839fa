package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

var ErrTodoNotFound = errors.New("todo not found")

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

func scanTodo(row pgx.Row) (models.Todo, error) {
	var todo models.Todo
	if err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}
	return todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, userID int64, title, description string) (models.Todo, error) {
	const query = `
		INSERT INTO todos (user_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + todoColumns

	return scanTodo(r.pool.QueryRow(ctx, query, userID, title, description))
}

func (r *TodoRepository) GetByID(ctx context.Context, userID, id int64) (models.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	return scanTodo(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

// ListActiveByUser returns incomplete todos, newest first. Used for the
// creation digest and on-demand summary emails.
func (r *TodoRepository) ListActiveByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1 AND completed = FALSE
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *TodoRepository) list(ctx context.Context, query string, userID int64) ([]models.Todo, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) Update(ctx context.Context, todo models.Todo) (models.Todo, error) {
	const query = `
		UPDATE todos
		SET title = $3, description = $4, completed = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns

	return scanTodo(r.pool.QueryRow(ctx, query, todo.ID, todo.UserID, todo.Title, todo.Description, todo.Completed))
}

func (r *TodoRepository) Delete(ctx context.Context, userID, id int64) error {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}
