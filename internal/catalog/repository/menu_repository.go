package repository

import (
	"context"
	"database/sql"
	"fmt"

	"foodcart/internal/domain"
	"foodcart/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

func (r *MySQLMenuRepository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	query := `SELECT id, name, price FROM menu ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning menu row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu rows: %w", err)
	}

	return items, nil
}

func (r *MySQLMenuRepository) FindByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `SELECT id, name, price FROM menu WHERE id = ?`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}
