package rateservice

import (
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

type Store interface {
	SetRate(rate float64, updatedBy string) (domain.PriceEntry, error)
	Rate() float64
	PriceHistory() []domain.PriceEntry
	DailyChange() domain.Change
	WeeklyChange() domain.Change
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

// CurrentRate is the dashboard headline: the rate plus its short-term
// movement.
type CurrentRate struct {
	Rate          float64
	FormattedRate string
	Daily         domain.Change
	Weekly        domain.Change
}

func (s *Service) Update(rate float64, updatedBy string) (domain.PriceEntry, error) {
	entry, err := s.store.SetRate(rate, updatedBy)
	if err != nil {
		zap.L().Error("failed to update rate", zap.Float64("rate", rate), zap.Error(err))
		return domain.PriceEntry{}, err
	}
	return entry, nil
}

func (s *Service) Current() CurrentRate {
	return CurrentRate{
		Rate:          s.store.Rate(),
		FormattedRate: s.store.FormatINR(1),
		Daily:         s.store.DailyChange(),
		Weekly:        s.store.WeeklyChange(),
	}
}

func (s *Service) History() []domain.PriceEntry {
	return s.store.PriceHistory()
}
