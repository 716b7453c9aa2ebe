package domain

import "time"

// Transaction kinds as they appear in the ledger.
const (
	TxnAdd     string = "add"
	TxnDeduct  string = "deduct"
	TxnDeposit string = "deposit"
	TxnPayout  string = "payout"
	TxnBonus   string = "bonus"
)

// KYC statuses.
const (
	KYCVerified string = "Verified"
	KYCPending  string = "Pending"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HolderID       string    `json:"holderId"`
	Email          string    `json:"email"`
	RBQBalance     float64   `json:"rbqBalance"`
	KYCStatus      string    `json:"kycStatus"`
	JoinDate       time.Time `json:"joinDate"`
	Manager        string    `json:"assignedManager"`
	ManagerContact string    `json:"managerContact"`
}

type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Kind      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"createdBy"`
}

type PriceEntry struct {
	ID        string    `json:"id"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
	UpdatedBy string    `json:"updatedBy"`
}

// Change is a rate delta against a historical baseline.
type Change struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Sell order statuses. StatusFulfilled is a legal value on the wire but
// no code path produces it: there is no matching engine.
const (
	OrderActive    string = "active"
	OrderFulfilled string = "fulfilled"
	OrderCancelled string = "cancelled"
)

type SellOrder struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	HolderID      string    `json:"holderId"`
	TokenAmount   float64   `json:"tokenAmount"`
	MinimumPrice  float64   `json:"minimumPrice"`
	PricePerToken float64   `json:"pricePerToken"`
	Status        string    `json:"status"`
	CreatedDate   time.Time `json:"createdDate"`
	UpdatedDate   time.Time `json:"updatedDate"`
}

// Withdrawal record statuses and payment methods.
const (
	WithdrawalProcessed string = "Processed"
	WithdrawalPending   string = "Pending"
	WithdrawalFailed    string = "Failed"

	PaymentRBQWallet    string = "RBQ Wallet"
	PaymentBankTransfer string = "Bank Transfer"
)

// WithdrawalRecord is an admin-maintained tracking row. It is editorial
// data: amounts are stored pre-formatted and nothing here touches the
// transaction ledger or user balances.
type WithdrawalRecord struct {
	ID            string    `json:"id"`
	HolderName    string    `json:"holderName"`
	HolderID      string    `json:"holderId"`
	WalletAddress string    `json:"walletAddress"`
	AmountRBQ     string    `json:"amountRbq"`
	AmountINR     string    `json:"amountInr"`
	TxnHash       string    `json:"txnHash"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PaymentMethod string    `json:"paymentMethod"`
	BankReference string    `json:"bankReference,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}
