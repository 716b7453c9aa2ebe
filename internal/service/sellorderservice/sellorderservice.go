package sellorderservice

import (
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/store"
)

type Store interface {
	CreateSellOrder(userID string, tokenAmount, minimumPrice float64) (domain.SellOrder, error)
	CancelSellOrder(orderID string) (domain.SellOrder, error)
	UserSellOrders(userID string) []domain.SellOrder
	AllSellOrders() []domain.SellOrder
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Create(userID string, tokenAmount, minimumPrice float64) (domain.SellOrder, error) {
	order, err := s.store.CreateSellOrder(userID, tokenAmount, minimumPrice)
	if err != nil {
		zap.L().Error("failed to create sell order",
			zap.String("user_id", userID),
			zap.Float64("token_amount", tokenAmount),
			zap.Error(err))
		return domain.SellOrder{}, err
	}
	return order, nil
}

// Cancel cancels one of the caller's own orders. An order belonging to
// someone else reads as not found.
func (s *Service) Cancel(userID, orderID string) (domain.SellOrder, error) {
	owned := false
	for _, order := range s.store.UserSellOrders(userID) {
		if order.ID == orderID {
			owned = true
			break
		}
	}
	if !owned {
		zap.L().Info("cancel requested for foreign or unknown order",
			zap.String("user_id", userID),
			zap.String("order_id", orderID))
		return domain.SellOrder{}, store.ErrOrderNotFound
	}

	order, err := s.store.CancelSellOrder(orderID)
	if err != nil {
		zap.L().Error("failed to cancel sell order",
			zap.String("order_id", orderID),
			zap.Error(err))
		return domain.SellOrder{}, err
	}
	return order, nil
}

func (s *Service) UserOrders(userID string) []domain.SellOrder {
	return s.store.UserSellOrders(userID)
}

func (s *Service) AllOrders() []domain.SellOrder {
	return s.store.AllSellOrders()
}
