package store

import (
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

// AddWithdrawalRecord appends an admin tracking row. The record is
// editorial only: it never touches balances or the ledger.
func (s *Store) AddWithdrawalRecord(record domain.WithdrawalRecord) (domain.WithdrawalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = newID("wd")
	record.CreatedAt = s.now()
	if record.CreatedBy == "" {
		record.CreatedBy = "Admin"
	}
	if record.Status == "" {
		record.Status = domain.WithdrawalPending
	}
	s.withdrawals = append([]domain.WithdrawalRecord{record}, s.withdrawals...)

	zap.L().Info("withdrawal record added",
		zap.String("record_id", record.ID),
		zap.String("holder_id", record.HolderID))
	s.publish(EventWithdrawalUpdated, record)
	return record, nil
}

// UpdateWithdrawalRecord replaces the editable fields of an existing
// record; id, creator and creation time are preserved.
func (s *Store) UpdateWithdrawalRecord(id string, record domain.WithdrawalRecord) (domain.WithdrawalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.withdrawals {
		if s.withdrawals[i].ID == id {
			record.ID = id
			record.CreatedBy = s.withdrawals[i].CreatedBy
			record.CreatedAt = s.withdrawals[i].CreatedAt
			s.withdrawals[i] = record

			zap.L().Info("withdrawal record updated", zap.String("record_id", id))
			s.publish(EventWithdrawalUpdated, record)
			return record, nil
		}
	}
	return domain.WithdrawalRecord{}, ErrRecordNotFound
}

func (s *Store) DeleteWithdrawalRecord(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.withdrawals {
		if s.withdrawals[i].ID == id {
			s.withdrawals = append(s.withdrawals[:i], s.withdrawals[i+1:]...)
			zap.L().Info("withdrawal record deleted", zap.String("record_id", id))
			s.publish(EventWithdrawalUpdated, nil)
			return nil
		}
	}
	return ErrRecordNotFound
}

// WithdrawalRecords returns records newest-first.
func (s *Store) WithdrawalRecords() []domain.WithdrawalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.WithdrawalRecord, len(s.withdrawals))
	copy(records, s.withdrawals)
	return records
}
