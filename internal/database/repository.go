package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/quadro-app/quadro/internal/models"
)

// Repository provides item persistence over a SQLite connection
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository from a database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ DataStore = (*Repository)(nil)

const itemFields = `id, kind, title, description, status, priority, owner, due_date, created_at, updated_at`

// ============================================================================
// Item Operations
// ============================================================================

// CreateItem inserts a new item. A missing id or priority is filled in; the
// returned item carries the database-assigned timestamps.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item.ID == "" {
		item.ID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if item.Priority == "" {
		item.Priority = models.DefaultPriority
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, kind, title, description, status, priority, owner, due_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.Kind), item.Title, item.Description,
		item.Status, item.Priority, item.Owner, toNullTime(item.DueDate),
	)
	if err != nil {
		return nil, err
	}

	// Retrieve the created item to get timestamps
	return r.GetItem(ctx, item.ID)
}

// GetItem retrieves a single item by id
func (r *Repository) GetItem(ctx context.Context, id string) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemFields+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemsByKind retrieves all items belonging to one board, oldest first so
// the board projection shows stable arrival order.
func (r *Repository) GetItemsByKind(ctx context.Context, kind models.BoardKind) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemFields+` FROM items
		 WHERE kind = ?
		 ORDER BY created_at, id`,
		string(kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetItemCountByStatus returns the number of items with a given status on one board
func (r *Repository) GetItemCountByStatus(ctx context.Context, kind models.BoardKind, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE kind = ? AND status = ?",
		string(kind), status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateItem applies an edit to an item's descriptive fields and returns the
// updated row. Status changes go through UpdateItemStatus instead.
func (r *Repository) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (*models.Item, error) {
	item, err := r.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Priority != nil {
		item.Priority = *update.Priority
	}
	if update.Owner != nil {
		item.Owner = *update.Owner
	}
	if update.ClearDueDate {
		item.DueDate = nil
	} else if update.DueDate != nil {
		item.DueDate = update.DueDate
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE items
		 SET title = ?, description = ?, priority = ?, owner = ?, due_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		item.Title, item.Description, item.Priority, item.Owner, toNullTime(item.DueDate), id,
	)
	if err != nil {
		return nil, err
	}

	return r.GetItem(ctx, id)
}

// UpdateItemStatus moves an item to a new status and returns the updated row
func (r *Repository) UpdateItemStatus(ctx context.Context, id, status string) (*models.Item, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, models.ErrItemNotFound
	}

	return r.GetItem(ctx, id)
}

// DeleteItem removes an item from the database
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanItem
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	item := &models.Item{}
	var kind string
	var due sql.NullTime

	err := s.Scan(
		&item.ID, &kind, &item.Title, &item.Description,
		&item.Status, &item.Priority, &item.Owner, &due,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Kind = models.BoardKind(kind)
	item.DueDate = fromNullTime(due)
	return item, nil
}
