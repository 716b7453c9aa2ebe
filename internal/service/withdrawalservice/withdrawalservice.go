package withdrawalservice

import (
	"errors"

	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/pkg/validate"
)

type Store interface {
	AddWithdrawalRecord(record domain.WithdrawalRecord) (domain.WithdrawalRecord, error)
	UpdateWithdrawalRecord(id string, record domain.WithdrawalRecord) (domain.WithdrawalRecord, error)
	DeleteWithdrawalRecord(id string) error
	WithdrawalRecords() []domain.WithdrawalRecord
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

var (
	ErrInvalidStatus        = errors.New("invalid withdrawal status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidBankReference = errors.New("invalid bank transfer reference")
	ErrMissingHolder        = errors.New("holder name and id are required")
)

func (s *Service) Add(record domain.WithdrawalRecord) (domain.WithdrawalRecord, error) {
	if err := validateRecord(record); err != nil {
		zap.L().Info("rejected withdrawal record", zap.Error(err))
		return domain.WithdrawalRecord{}, err
	}
	return s.store.AddWithdrawalRecord(record)
}

func (s *Service) Update(id string, record domain.WithdrawalRecord) (domain.WithdrawalRecord, error) {
	if err := validateRecord(record); err != nil {
		zap.L().Info("rejected withdrawal record update", zap.String("record_id", id), zap.Error(err))
		return domain.WithdrawalRecord{}, err
	}
	return s.store.UpdateWithdrawalRecord(id, record)
}

func (s *Service) Delete(id string) error {
	return s.store.DeleteWithdrawalRecord(id)
}

func (s *Service) List() []domain.WithdrawalRecord {
	return s.store.WithdrawalRecords()
}

func validateRecord(record domain.WithdrawalRecord) error {
	if record.HolderName == "" || record.HolderID == "" {
		return ErrMissingHolder
	}
	switch record.Status {
	case "", domain.WithdrawalProcessed, domain.WithdrawalPending, domain.WithdrawalFailed:
	default:
		return ErrInvalidStatus
	}
	switch record.PaymentMethod {
	case domain.PaymentRBQWallet, domain.PaymentBankTransfer:
	default:
		return ErrInvalidPaymentMethod
	}
	if record.PaymentMethod == domain.PaymentBankTransfer && record.BankReference != "" {
		if !validate.IsLuhn(record.BankReference) {
			return ErrInvalidBankReference
		}
	}
	return nil
}
