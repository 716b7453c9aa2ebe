package store

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/pkg/validate"
)

// DeductResult reports exactly how a deduction landed. Applied can be
// lower than Requested: deductions clamp at a zero balance instead of
// overdrawing, and Clamped tells the caller the deduction was partial.
type DeductResult struct {
	Requested   float64            `json:"requested"`
	Applied     float64            `json:"applied"`
	Clamped     bool               `json:"clamped"`
	Balance     float64            `json:"balance"`
	Transaction domain.Transaction `json:"transaction"`
}

// Credit increases a user's balance and appends an "add" transaction.
func (s *Store) Credit(userID string, amount float64, reason, createdBy string) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, ErrInvalidAmount
	}
	if strings.TrimSpace(reason) == "" {
		return domain.Transaction{}, ErrEmptyReason
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditLocked(userID, amount, reason, createdBy)
}

func (s *Store) creditLocked(userID string, amount float64, reason, createdBy string) (domain.Transaction, error) {
	user := s.findUser(userID)
	if user == nil {
		return domain.Transaction{}, ErrUserNotFound
	}
	user.RBQBalance += amount

	txn := s.appendTransaction(userID, domain.TxnAdd, amount, reason, createdBy)
	zap.L().Info("tokens credited",
		zap.String("user_id", userID),
		zap.Float64("amount", amount),
		zap.String("reason", reason))
	s.publish(EventWalletChanged, txn)
	return txn, nil
}

// Deduct decreases a user's balance by at most the current balance and
// records the actually deducted amount in the ledger.
func (s *Store) Deduct(userID string, amount float64, reason, createdBy string) (DeductResult, error) {
	if amount <= 0 {
		return DeductResult{}, ErrInvalidAmount
	}
	if strings.TrimSpace(reason) == "" {
		return DeductResult{}, ErrEmptyReason
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deductLocked(userID, amount, reason, createdBy)
}

func (s *Store) deductLocked(userID string, amount float64, reason, createdBy string) (DeductResult, error) {
	user := s.findUser(userID)
	if user == nil {
		return DeductResult{}, ErrUserNotFound
	}

	applied := amount
	if applied > user.RBQBalance {
		applied = user.RBQBalance
	}
	user.RBQBalance -= applied

	txn := s.appendTransaction(userID, domain.TxnDeduct, applied, reason, createdBy)
	result := DeductResult{
		Requested:   amount,
		Applied:     applied,
		Clamped:     applied < amount,
		Balance:     user.RBQBalance,
		Transaction: txn,
	}
	zap.L().Info("tokens deducted",
		zap.String("user_id", userID),
		zap.Float64("requested", amount),
		zap.Float64("applied", applied),
		zap.Bool("clamped", result.Clamped))
	s.publish(EventWalletChanged, txn)
	return result, nil
}

// appendTransaction prepends to keep the ledger newest-first. Callers
// hold the write lock.
func (s *Store) appendTransaction(userID, kind string, amount float64, reason, createdBy string) domain.Transaction {
	if createdBy == "" {
		createdBy = "Admin"
	}
	txn := domain.Transaction{
		ID:        newID("txn"),
		UserID:    userID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		Date:      s.now(),
		CreatedBy: createdBy,
	}
	s.transactions = append([]domain.Transaction{txn}, s.transactions...)
	return txn
}

// User returns a copy of the user, or nil if unknown.
func (s *Store) User(userID string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user := s.findUser(userID); user != nil {
		u := *user
		return &u
	}
	return nil
}

func (s *Store) UserByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users
}

// AddUser provisions a holder for a principal authenticated by the
// external auth service: fresh holder id, pending KYC, round-robin
// relationship manager.
func (s *Store) AddUser(id, name, email string) (domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if name == "" {
		name = email[:strings.Index(email+"@", "@")]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = newID("user")
	}
	for i := range s.users {
		if s.users[i].ID == id || strings.EqualFold(s.users[i].Email, email) {
			return domain.User{}, ErrUserAlreadyExists
		}
	}

	manager := seedManagers[len(s.users)%len(seedManagers)]
	user := domain.User{
		ID:             id,
		Name:           name,
		HolderID:       "RBC-" + validate.NewHolderNumber(6),
		Email:          email,
		RBQBalance:     0,
		KYCStatus:      domain.KYCPending,
		JoinDate:       s.now(),
		Manager:        manager.Name,
		ManagerContact: manager.Contact,
	}
	s.users = append(s.users, user)

	zap.L().Info("holder provisioned",
		zap.String("user_id", user.ID),
		zap.String("holder_id", user.HolderID))
	s.publish(EventWalletChanged, user)
	return user, nil
}

// UserTransactions filters the ledger for one user, newest-first.
func (s *Store) UserTransactions(userID string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var txns []domain.Transaction
	for _, txn := range s.transactions {
		if txn.UserID == userID {
			txns = append(txns, txn)
		}
	}
	return txns
}

func (s *Store) AllTransactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := make([]domain.Transaction, len(s.transactions))
	copy(txns, s.transactions)
	return txns
}
