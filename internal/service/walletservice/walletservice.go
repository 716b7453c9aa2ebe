package walletservice

import (
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/store"
)

type Store interface {
	Credit(userID string, amount float64, reason, createdBy string) (domain.Transaction, error)
	Deduct(userID string, amount float64, reason, createdBy string) (store.DeductResult, error)
	User(userID string) *domain.User
	Users() []domain.User
	UserTransactions(userID string) []domain.Transaction
	AllTransactions() []domain.Transaction
	Rate() float64
	DailyChange() domain.Change
	WeeklyChange() domain.Change
	FormatRBQ(amount float64) string
	FormatINR(amount float64) string
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Wallet is the authenticated dashboard view of a holder's balance.
type Wallet struct {
	User       domain.User
	BalanceRBQ string
	BalanceINR string
	Rate       float64
	Daily      domain.Change
	Weekly     domain.Change
}

func (s *Service) Wallet(userID string) (*Wallet, error) {
	user := s.store.User(userID)
	if user == nil {
		zap.L().Info("wallet requested for unknown user", zap.String("user_id", userID))
		return nil, store.ErrUserNotFound
	}
	return &Wallet{
		User:       *user,
		BalanceRBQ: s.store.FormatRBQ(user.RBQBalance),
		BalanceINR: s.store.FormatINR(user.RBQBalance),
		Rate:       s.store.Rate(),
		Daily:      s.store.DailyChange(),
		Weekly:     s.store.WeeklyChange(),
	}, nil
}

func (s *Service) Credit(userID string, amount float64, reason, createdBy string) (domain.Transaction, error) {
	txn, err := s.store.Credit(userID, amount, reason, createdBy)
	if err != nil {
		zap.L().Error("failed to credit tokens",
			zap.String("user_id", userID),
			zap.Float64("amount", amount),
			zap.Error(err))
		return domain.Transaction{}, err
	}
	return txn, nil
}

func (s *Service) Deduct(userID string, amount float64, reason, createdBy string) (store.DeductResult, error) {
	result, err := s.store.Deduct(userID, amount, reason, createdBy)
	if err != nil {
		zap.L().Error("failed to deduct tokens",
			zap.String("user_id", userID),
			zap.Float64("amount", amount),
			zap.Error(err))
		return store.DeductResult{}, err
	}
	return result, nil
}

func (s *Service) Transactions(userID string) []domain.Transaction {
	return s.store.UserTransactions(userID)
}

func (s *Service) AllTransactions() []domain.Transaction {
	return s.store.AllTransactions()
}

func (s *Service) Users() []domain.User {
	return s.store.Users()
}
