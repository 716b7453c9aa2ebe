package dto

type SetRateRequestDTO struct {
	Rate      float64 `json:"rate" example:"40"`
	UpdatedBy string  `json:"updatedBy,omitempty" example:"Admin"`
}

type ChangeDTO struct {
	Amount     float64 `json:"amount" example:"0.7"`
	Percentage float64 `json:"percentage" example:"1.96"`
}

type CurrentRateResponseDTO struct {
	Rate          float64   `json:"rate" example:"36.5"`
	FormattedRate string    `json:"formattedRate" example:"₹36.50"`
	DailyChange   ChangeDTO `json:"dailyChange"`
	WeeklyChange  ChangeDTO `json:"weeklyChange"`
}

type PriceEntryDTO struct {
	ID        string  `json:"id"`
	Price     float64 `json:"price" example:"36.5"`
	Date      string  `json:"date" example:"2024-10-02"`
	UpdatedBy string  `json:"updatedBy" example:"Admin"`
}
