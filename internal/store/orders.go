package store

import (
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

// Reasons recorded on the ledger for order lifecycle movements.
const (
	orderCreateReason = "Sell order creation"
	orderCancelReason = "Sell order cancellation"
)

// CreateSellOrder reserves tokenAmount from the user's balance by
// deducting it immediately and appends an active order. The reserved
// tokens come back only through cancellation; there is no matching
// engine, so no order ever becomes fulfilled.
func (s *Store) CreateSellOrder(userID string, tokenAmount, minimumPrice float64) (domain.SellOrder, error) {
	if tokenAmount <= 0 {
		return domain.SellOrder{}, ErrInvalidAmount
	}
	if minimumPrice <= 0 {
		return domain.SellOrder{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil {
		return domain.SellOrder{}, ErrUserNotFound
	}
	if user.RBQBalance < tokenAmount {
		return domain.SellOrder{}, ErrInsufficientBalance
	}

	now := s.now()
	order := domain.SellOrder{
		ID:            newID("sell"),
		UserID:        user.ID,
		UserName:      user.Name,
		HolderID:      user.HolderID,
		TokenAmount:   tokenAmount,
		MinimumPrice:  minimumPrice,
		PricePerToken: minimumPrice,
		Status:        domain.OrderActive,
		CreatedDate:   now,
		UpdatedDate:   now,
	}
	s.sellOrders = append([]domain.SellOrder{order}, s.sellOrders...)

	if _, err := s.deductLocked(userID, tokenAmount, orderCreateReason, "System"); err != nil {
		return domain.SellOrder{}, err
	}

	zap.L().Info("sell order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Float64("token_amount", tokenAmount),
		zap.Float64("minimum_price", minimumPrice))
	s.publish(EventOrderCreated, order)
	return order, nil
}

// CancelSellOrder marks an active order cancelled and restores the
// reserved tokens. Cancelling is idempotent: a non-active order is
// rejected instead of re-crediting the user.
func (s *Store) CancelSellOrder(orderID string) (domain.SellOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order *domain.SellOrder
	for i := range s.sellOrders {
		if s.sellOrders[i].ID == orderID {
			order = &s.sellOrders[i]
			break
		}
	}
	if order == nil {
		return domain.SellOrder{}, ErrOrderNotFound
	}
	if order.Status != domain.OrderActive {
		return domain.SellOrder{}, ErrOrderNotActive
	}

	order.Status = domain.OrderCancelled
	order.UpdatedDate = s.now()

	if _, err := s.creditLocked(order.UserID, order.TokenAmount, orderCancelReason, "System"); err != nil {
		return domain.SellOrder{}, err
	}

	zap.L().Info("sell order cancelled",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID))
	s.publish(EventOrderCancelled, *order)
	return *order, nil
}

func (s *Store) UserSellOrders(userID string) []domain.SellOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var orders []domain.SellOrder
	for _, order := range s.sellOrders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders
}

func (s *Store) AllSellOrders() []domain.SellOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]domain.SellOrder, len(s.sellOrders))
	copy(orders, s.sellOrders)
	return orders
}
