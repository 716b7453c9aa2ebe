package dto

type WalletResponseDTO struct {
	User         UserDTO   `json:"user"`
	BalanceRBQ   string    `json:"balanceRbq" example:"6,500.00"`
	BalanceINR   string    `json:"balanceInr" example:"₹2,37,250.00"`
	Rate         float64   `json:"rate" example:"36.5"`
	DailyChange  ChangeDTO `json:"dailyChange"`
	WeeklyChange ChangeDTO `json:"weeklyChange"`
}

type WalletMutationRequestDTO struct {
	UserID    string  `json:"userId" example:"user-001"`
	Amount    float64 `json:"amount" example:"100"`
	Reason    string  `json:"reason" example:"Token allocation - October 2025"`
	CreatedBy string  `json:"createdBy,omitempty" example:"Admin"`
}

type TransactionDTO struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Type      string  `json:"type" example:"add"`
	Amount    float64 `json:"amount" example:"100"`
	Reason    string  `json:"reason"`
	Date      string  `json:"date" example:"2024-10-02"`
	CreatedBy string  `json:"createdBy"`
}

type DeductResponseDTO struct {
	Requested   float64        `json:"requested" example:"5000"`
	Applied     float64        `json:"applied" example:"3500"`
	Clamped     bool           `json:"clamped"`
	Balance     float64        `json:"balance"`
	Transaction TransactionDTO `json:"transaction"`
}
