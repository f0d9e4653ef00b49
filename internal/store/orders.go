package store

import (
	"context"
	"database/sql"

	"avoska-api/internal/models"
)

type OrderStore interface {
	Insert(ctx context.Context, userID int, deliveryAddress string) (int64, error)
	InsertItem(ctx context.Context, orderID int64, productID, quantity int) error
	Delete(ctx context.Context, orderID int64) error
	ListByUser(ctx context.Context, sessionUserID string) ([]models.Order, error)
	ListItems(ctx context.Context, orderID int) ([]models.OrderItem, error)
	ListAllJoined(ctx context.Context) ([]models.AdminOrderRow, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type Orders struct {
	db *sql.DB
}

func NewOrders(db *sql.DB) *Orders {
	return &Orders{db: db}
}

func (s *Orders) Insert(ctx context.Context, userID int, deliveryAddress string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO orders (user_id, delivery_address) VALUES (?, ?)",
		userID, deliveryAddress,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Orders) InsertItem(ctx context.Context, orderID int64, productID, quantity int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO order_items (order_id, product_id, quantity) VALUES (?, ?, ?)",
		orderID, productID, quantity,
	)
	return err
}

func (s *Orders) Delete(ctx context.Context, orderID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", orderID)
	return err
}

// ListByUser takes the session value as-is; the admin sentinel matches
// no numeric user_id and yields an empty list.
func (s *Orders) ListByUser(ctx context.Context, sessionUserID string) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, delivery_address, status FROM orders WHERE user_id = ?",
		sessionUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.DeliveryAddress, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Orders) ListItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT products.name AS product_name, order_items.quantity
		FROM order_items
		JOIN products ON order_items.product_id = products.id
		WHERE order_items.order_id = ?`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductName, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListAllJoined returns the flat admin join. Inner joins throughout, so
// orders without a single order_items row do not appear at all.
func (s *Orders) ListAllJoined(ctx context.Context) ([]models.AdminOrderRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT orders.id, users.full_name AS user_full_name, users.email AS user_email,
		       products.name AS product_name, order_items.quantity, orders.delivery_address, orders.status
		FROM orders
		INNER JOIN users ON orders.user_id = users.id
		INNER JOIN order_items ON orders.id = order_items.order_id
		INNER JOIN products ON order_items.product_id = products.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.AdminOrderRow{}
	for rows.Next() {
		var r models.AdminOrderRow
		err := rows.Scan(
			&r.OrderID, &r.UserFullName, &r.UserEmail,
			&r.ProductName, &r.Quantity, &r.DeliveryAddress, &r.Status,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// UpdateStatus is unconditional: a zero-row update is not an error.
func (s *Orders) UpdateStatus(ctx context.Context, orderID, status string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, orderID)
	return err
}
