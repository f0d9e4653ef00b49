package services

import (
	"context"

	"avoska-api/internal/models"
	"avoska-api/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type OrderService struct {
	orders store.OrderStore
	logger zerolog.Logger
}

func NewOrderService(orders store.OrderStore, logger zerolog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger,
	}
}

// Create inserts the order row, then each line item in sequence. On an
// item failure it deletes the order row and reports the original
// error. This is a compensating delete, not a rollback: items inserted
// before the failing one stay behind.
func (s *OrderService) Create(ctx context.Context, userID int, req *models.CreateOrderRequest) error {
	orderID, err := s.orders.Insert(ctx, userID, req.DeliveryAddress)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Msg("Error creating order")
		return err
	}

	for _, item := range req.Items {
		if err := s.orders.InsertItem(ctx, orderID, item.ProductID, item.Quantity); err != nil {
			s.logger.Error().Err(err).
				Int64("order_id", orderID).
				Int("product_id", item.ProductID).
				Msg("Error creating order item, deleting order")
			if delErr := s.orders.Delete(ctx, orderID); delErr != nil {
				s.logger.Error().Err(delErr).Int64("order_id", orderID).Msg("Compensating delete failed")
			}
			return err
		}
	}

	s.logger.Info().Int64("order_id", orderID).Int("user_id", userID).Int("items", len(req.Items)).Msg("Order placed")
	return nil
}

// ListForUser fetches the caller's orders, then each order's items
// concurrently. The returned slice follows the order-query result, not
// completion order.
func (s *OrderService) ListForUser(ctx context.Context, sessionUserID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, sessionUserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", sessionUserID).Msg("Error listing orders")
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range orders {
		i := i
		g.Go(func() error {
			items, err := s.orders.ListItems(ctx, orders[i].ID)
			if err != nil {
				return err
			}
			orders[i].Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("user_id", sessionUserID).Msg("Error listing order items")
		return nil, err
	}

	return orders, nil
}

// ListAll reshapes the flat admin join into one entry per order,
// grouped by order id in first-seen order. Orders without items never
// appear in the join.
func (s *OrderService) ListAll(ctx context.Context) ([]models.AdminOrder, error) {
	rows, err := s.orders.ListAllJoined(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing all orders")
		return nil, err
	}

	index := map[int]int{}
	orders := []models.AdminOrder{}
	for _, r := range rows {
		item := models.OrderItem{ProductName: r.ProductName, Quantity: r.Quantity}
		if pos, ok := index[r.OrderID]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
			continue
		}
		index[r.OrderID] = len(orders)
		orders = append(orders, models.AdminOrder{
			ID:              r.OrderID,
			UserFullName:    r.UserFullName,
			UserEmail:       r.UserEmail,
			DeliveryAddress: r.DeliveryAddress,
			Status:          r.Status,
			Items:           []models.OrderItem{item},
		})
	}
	return orders, nil
}

// UpdateStatus is a pass-through: no status whitelist, and updating a
// nonexistent order id affects zero rows and still succeeds.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("Error updating order status")
		return err
	}
	s.logger.Info().Str("order_id", orderID).Str("status", status).Msg("Order status updated")
	return nil
}
