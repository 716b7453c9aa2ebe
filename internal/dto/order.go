package dto

type CreateSellOrderRequestDTO struct {
	TokenAmount  float64 `json:"tokenAmount" example:"1000"`
	MinimumPrice float64 `json:"minimumPrice" example:"35"`
}

type SellOrderDTO struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	HolderID      string  `json:"holderId" example:"RBC-15247"`
	TokenAmount   float64 `json:"tokenAmount" example:"1000"`
	MinimumPrice  float64 `json:"minimumPrice" example:"35"`
	PricePerToken float64 `json:"pricePerToken" example:"35"`
	Status        string  `json:"status" example:"active"`
	CreatedDate   string  `json:"createdDate" example:"2024-10-01"`
	UpdatedDate   string  `json:"updatedDate" example:"2024-10-01"`
}
