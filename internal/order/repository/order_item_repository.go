package repository

import (
	"context"
	"database/sql"
	"fmt"

	"foodcart/internal/domain"
	"foodcart/internal/dto"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	query := `INSERT INTO order_items (order_id, menu_id, quantity, price_per_item) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, item.OrderID, item.MenuID, item.Quantity, item.PricePerItem)
	if err != nil {
		return 0, fmt.Errorf("inserting order item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindDetailByOrderID joins order items with their menu rows for the
// tracking view.
func (r *MySQLOrderItemRepository) FindDetailByOrderID(ctx context.Context, orderID uint) ([]dto.OrderDetailItem, error) {
	query := `
		SELECT m.name, oi.quantity, oi.price_per_item
		FROM order_items oi
		JOIN menu m ON oi.menu_id = m.id
		WHERE oi.order_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []dto.OrderDetailItem
	for rows.Next() {
		var item dto.OrderDetailItem
		if err := rows.Scan(&item.Name, &item.Quantity, &item.PricePerItem); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		item.TotalItemPrice = item.Quantity * item.PricePerItem
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
