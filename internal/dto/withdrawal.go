package dto

type WithdrawalRecordRequestDTO struct {
	HolderName    string `json:"holderName"`
	HolderID      string `json:"holderId" example:"RBC-15248"`
	WalletAddress string `json:"walletAddress"`
	AmountRBQ     string `json:"amountRbq" example:"500.00"`
	AmountINR     string `json:"amountInr" example:"₹18,250.00"`
	TxnHash       string `json:"txnHash"`
	Date          string `json:"date" example:"2024-10-01"`
	Time          string `json:"time" example:"14:22:08"`
	PaymentMethod string `json:"paymentMethod" example:"Bank Transfer"`
	BankReference string `json:"bankReference,omitempty" example:"2377225624"`
	Status        string `json:"status" example:"Pending"`
	Notes         string `json:"notes"`
	CreatedBy     string `json:"createdBy,omitempty"`
}

type WithdrawalRecordDTO struct {
	ID            string `json:"id"`
	HolderName    string `json:"holderName"`
	HolderID      string `json:"holderId"`
	WalletAddress string `json:"walletAddress"`
	AmountRBQ     string `json:"amountRbq"`
	AmountINR     string `json:"amountInr"`
	TxnHash       string `json:"txnHash"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PaymentMethod string `json:"paymentMethod"`
	BankReference string `json:"bankReference,omitempty"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	CreatedBy     string `json:"createdBy"`
	CreatedAt     string `json:"createdAt"`
}
