package store

import (
	"time"

	"github.com/rubyconworld/rbq-platform/internal/domain"
)

const seedRate = 36.5

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Relationship managers assigned round-robin to newly provisioned
// holders.
var seedManagers = []struct {
	Name    string
	Contact string
}{
	{Name: "Sarah Wilson", Contact: "sarah.wilson@rubyconworld.in"},
	{Name: "David Johnson", Contact: "david.johnson@rubyconworld.in"},
}

func seedPriceHistory() []domain.PriceEntry {
	return []domain.PriceEntry{
		{ID: "price-001", Price: 28.50, Date: day("2024-09-23"), UpdatedBy: "System"},
		{ID: "price-002", Price: 29.75, Date: day("2024-09-24"), UpdatedBy: "Admin"},
		{ID: "price-003", Price: 31.20, Date: day("2024-09-25"), UpdatedBy: "Admin"},
		{ID: "price-004", Price: 30.80, Date: day("2024-09-26"), UpdatedBy: "System"},
		{ID: "price-005", Price: 32.10, Date: day("2024-09-27"), UpdatedBy: "Admin"},
		{ID: "price-006", Price: 33.45, Date: day("2024-09-28"), UpdatedBy: "Admin"},
		{ID: "price-007", Price: 34.90, Date: day("2024-09-29"), UpdatedBy: "Admin"},
		{ID: "price-008", Price: 35.25, Date: day("2024-09-30"), UpdatedBy: "Admin"},
		{ID: "price-009", Price: 35.80, Date: day("2024-10-01"), UpdatedBy: "System"},
		{ID: "price-010", Price: 36.50, Date: day("2024-10-02"), UpdatedBy: "Admin"},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{
			ID: "user-001", Name: "John Doe", HolderID: "RBC-15247",
			Email: "john.doe@example.com", RBQBalance: 6500,
			KYCStatus: domain.KYCVerified, JoinDate: day("2024-03-15"),
			Manager: "Sarah Wilson", ManagerContact: "sarah.wilson@rubyconworld.in",
		},
		{
			ID: "user-002", Name: "Jane Smith", HolderID: "RBC-15248",
			Email: "jane.smith@example.com", RBQBalance: 3500,
			KYCStatus: domain.KYCVerified, JoinDate: day("2024-02-20"),
			Manager: "David Johnson", ManagerContact: "david.johnson@rubyconworld.in",
		},
		{
			ID: "user-003", Name: "Mike Johnson", HolderID: "RBC-15249",
			Email: "mike.johnson@example.com", RBQBalance: 15632.89,
			KYCStatus: domain.KYCPending, JoinDate: day("2024-04-10"),
			Manager: "Sarah Wilson", ManagerContact: "sarah.wilson@rubyconworld.in",
		},
		{
			ID: "user-004", Name: "Sarah Brown", HolderID: "RBC-15250",
			Email: "sarah.brown@example.com", RBQBalance: 6892.15,
			KYCStatus: domain.KYCVerified, JoinDate: day("2024-01-15"),
			Manager: "David Johnson", ManagerContact: "david.johnson@rubyconworld.in",
		},
		{
			ID: "user-005", Name: "Vedant Sangwan", HolderID: "RBC-240188",
			Email: "vedant.sangwan@example.com", RBQBalance: 5091.71,
			KYCStatus: domain.KYCVerified, JoinDate: day("2024-04-20"),
			Manager: "Sarah Wilson", ManagerContact: "sarah.wilson@rubyconworld.in",
		},
		{
			ID: "user-006", Name: "Harsh Jain", HolderID: "RBC-240593",
			Email: "harsh.jain@example.com", RBQBalance: 10044,
			KYCStatus: domain.KYCVerified, JoinDate: day("2024-05-12"),
			Manager: "David Johnson", ManagerContact: "david.johnson@rubyconworld.in",
		},
	}
}

// seedTransactions is newest-first, matching the ledger convention.
func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "txn-008", UserID: "user-006", Kind: domain.TxnDeposit, Amount: 10044, Reason: "Initial token allocation", Date: day("2024-05-12"), CreatedBy: "System"},
		{ID: "txn-007", UserID: "user-005", Kind: domain.TxnAdd, Amount: 83.71, Reason: "Additional token allocation - October 2025", Date: day("2025-10-02"), CreatedBy: "Admin"},
		{ID: "txn-006", UserID: "user-005", Kind: domain.TxnAdd, Amount: 4900, Reason: "Token allocation - September 2025", Date: day("2025-09-30"), CreatedBy: "Admin"},
		{ID: "txn-005", UserID: "user-005", Kind: domain.TxnDeposit, Amount: 108, Reason: "Initial deposit", Date: day("2024-04-20"), CreatedBy: "System"},
		{ID: "txn-004", UserID: "user-002", Kind: domain.TxnPayout, Amount: 500, Reason: "Weekly payout", Date: day("2024-04-01"), CreatedBy: "System"},
		{ID: "txn-003", UserID: "user-002", Kind: domain.TxnDeposit, Amount: 3000, Reason: "Initial deposit", Date: day("2024-02-20"), CreatedBy: "System"},
		{ID: "txn-002", UserID: "user-001", Kind: domain.TxnBonus, Amount: 1500, Reason: "Welcome bonus", Date: day("2024-03-16"), CreatedBy: "Admin"},
		{ID: "txn-001", UserID: "user-001", Kind: domain.TxnDeposit, Amount: 5000, Reason: "Initial deposit", Date: day("2024-03-15"), CreatedBy: "System"},
	}
}

func seedSellOrders() []domain.SellOrder {
	return []domain.SellOrder{
		{
			ID: "sell-002", UserID: "user-002", UserName: "Jane Smith", HolderID: "RBC-15248",
			TokenAmount: 500, MinimumPrice: 34.50, PricePerToken: 34.50,
			Status: domain.OrderActive, CreatedDate: day("2024-10-02"), UpdatedDate: day("2024-10-02"),
		},
		{
			ID: "sell-001", UserID: "user-001", UserName: "John Doe", HolderID: "RBC-15247",
			TokenAmount: 1000, MinimumPrice: 35.00, PricePerToken: 35.00,
			Status: domain.OrderActive, CreatedDate: day("2024-10-01"), UpdatedDate: day("2024-10-01"),
		},
	}
}

func seedWithdrawalRecords() []domain.WithdrawalRecord {
	return []domain.WithdrawalRecord{
		{
			ID: "wd-002", HolderName: "Jane Smith", HolderID: "RBC-15248",
			WalletAddress: "RBQ5x4M8mN2pQ7wT9yC1uE6dJ4kH8gF2bR3",
			AmountRBQ:     "500.00", AmountINR: "₹18,250.00",
			TxnHash: "0x3f8a2b1c9d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a",
			Date:    "2024-10-01", Time: "14:22:08",
			PaymentMethod: domain.PaymentBankTransfer,
			Status:        domain.WithdrawalPending,
			Notes:         "Regular withdrawal to bank account",
			CreatedBy:     "Admin", CreatedAt: day("2024-10-01"),
		},
		{
			ID: "wd-001", HolderName: "John Doe", HolderID: "RBC-15247",
			WalletAddress: "RBQ1x7F9mK3nP8vQ2wR5tY6uE8dH4jS9cL1aB0",
			AmountRBQ:     "1,000.00", AmountINR: "₹36,500.00",
			TxnHash: "0x9c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d",
			Date:    "2024-09-28", Time: "09:45:31",
			PaymentMethod: domain.PaymentRBQWallet,
			Status:        domain.WithdrawalProcessed,
			Notes:         "Bonus withdrawal processed successfully",
			CreatedBy:     "Admin", CreatedAt: day("2024-09-28"),
		},
	}
}
