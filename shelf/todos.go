package shelf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type (
	Todo struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		Done    bool   `json:"done"`
	}
)

func (s *Shelf) AddTodo(ctx context.Context, ownerID int64, content string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `insert into todos (todo_id, owner_id, content) values (?, ?, ?)`,
		id, ownerID, content)
	if err != nil {
		return "", fmt.Errorf("unable to add todo for user #%v, cause %w", ownerID, err)
	}
	return id, nil
}

// FirstTodo returns an arbitrary first entry of the todo list,
// regardless of owner.
func (s *Shelf) FirstTodo(ctx context.Context) (Todo, error) {
	var t Todo
	err := s.db.QueryRowContext(ctx, `select todo_id, content, done from todos order by rowid limit 1`).
		Scan(&t.ID, &t.Content, &t.Done)
	if errors.Is(err, sql.ErrNoRows) {
		return Todo{}, TodoNotFound{}
	} else if err != nil {
		return Todo{}, fmt.Errorf("unable to fetch first todo, cause %w", err)
	}
	return t, nil
}

func (s *Shelf) ListTodos(ctx context.Context, ownerID int64) ([]Todo, error) {
	rows, err := s.db.QueryContext(ctx, `select todo_id, content, done from todos where owner_id = ? order by rowid`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("unable to list todos for user #%v, cause %w", ownerID, err)
	}
	defer rows.Close()
	var out []Todo
	for rows.Next() {
		var t Todo
		err = rows.Scan(&t.ID, &t.Content, &t.Done)
		if err != nil {
			return nil, fmt.Errorf("unable to scan todo to output, cause %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
