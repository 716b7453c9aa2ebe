package store

import (
	"sort"

	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

// SetRate replaces the current rate and appends a price history entry
// stamped now. The history is append-only: entries are never edited or
// removed.
func (s *Store) SetRate(rate float64, updatedBy string) (domain.PriceEntry, error) {
	if rate <= 0 {
		return domain.PriceEntry{}, ErrInvalidRate
	}
	if updatedBy == "" {
		updatedBy = "Admin"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.PriceEntry{
		ID:        newID("price"),
		Price:     rate,
		Date:      s.now(),
		UpdatedBy: updatedBy,
	}
	s.rate = rate
	s.priceHistory = append(s.priceHistory, entry)

	zap.L().Info("rate updated",
		zap.Float64("rate", rate),
		zap.String("updated_by", updatedBy))
	s.publish(EventRateChanged, entry)
	return entry, nil
}

func (s *Store) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// PriceHistory returns the history sorted newest-first.
func (s *Store) PriceHistory() []domain.PriceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedHistory(s.priceHistory)
}

func sortedHistory(history []domain.PriceEntry) []domain.PriceEntry {
	sorted := make([]domain.PriceEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// DailyChange compares the current rate against the second most recent
// history entry. Fewer than two entries means no movement to report.
func (s *Store) DailyChange() domain.Change {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.priceHistory) < 2 {
		return domain.Change{}
	}
	sorted := sortedHistory(s.priceHistory)
	return changeAgainst(s.rate, sorted[1].Price)
}

// WeeklyChange compares the current rate against the most recent entry
// dated at least seven days ago, falling back to the oldest entry. An
// empty history reports no movement.
func (s *Store) WeeklyChange() domain.Change {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.priceHistory) == 0 {
		return domain.Change{}
	}
	sorted := sortedHistory(s.priceHistory)
	cutoff := s.now().AddDate(0, 0, -7)

	baseline := sorted[len(sorted)-1].Price
	for _, entry := range sorted {
		if !entry.Date.After(cutoff) {
			baseline = entry.Price
			break
		}
	}
	return changeAgainst(s.rate, baseline)
}

func changeAgainst(current, baseline float64) domain.Change {
	amount := current - baseline
	var percentage float64
	if baseline > 0 {
		percentage = amount / baseline * 100
	}
	return domain.Change{Amount: amount, Percentage: percentage}
}
