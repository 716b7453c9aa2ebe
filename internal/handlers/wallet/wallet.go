package wallet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/dto"
	"github.com/rubyconworld/rbq-platform/internal/service/walletservice"
	"github.com/rubyconworld/rbq-platform/internal/store"
	"github.com/rubyconworld/rbq-platform/pkg/auth"
	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type Service interface {
	Wallet(userID string) (*walletservice.Wallet, error)
	Credit(userID string, amount float64, reason, createdBy string) (domain.Transaction, error)
	Deduct(userID string, amount float64, reason, createdBy string) (store.DeductResult, error)
	Transactions(userID string) []domain.Transaction
	AllTransactions() []domain.Transaction
	Users() []domain.User
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get the authenticated holder's wallet
//	@Description	Balance in RBQ and INR with the current rate and its daily/weekly change
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Holder not found"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	wallet, err := h.walletService.Wallet(userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		User:         toUserDTO(wallet.User),
		BalanceRBQ:   wallet.BalanceRBQ,
		BalanceINR:   wallet.BalanceINR,
		Rate:         wallet.Rate,
		DailyChange:  dto.ChangeDTO(wallet.Daily),
		WeeklyChange: dto.ChangeDTO(wallet.Weekly),
	})
}

// GetTransactions godoc
//
//	@Summary		Get the authenticated holder's transactions
//	@Description	Ledger entries for the holder, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(h.walletService.Transactions(userID)))
}

// Credit godoc
//
//	@Summary		Credit tokens to a holder
//	@Description	Add tokens to a holder balance and record a ledger entry
//	@Tags			Admin
//	@Security		AdminKey
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletMutationRequestDTO	true	"Credit request"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or reason"
//	@Failure		404		{object}	utils.Response	"Holder not found"
//	@Router			/api/admin/wallet/credit [post]
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletMutationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	txn, err := h.walletService.Credit(req.UserID, req.Amount, req.Reason, req.CreatedBy)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// Debit godoc
//
//	@Summary		Deduct tokens from a holder
//	@Description	Deduct tokens, clamping at zero; the response reports the applied amount
//	@Tags			Admin
//	@Security		AdminKey
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletMutationRequestDTO	true	"Deduct request"
//	@Success		200		{object}	dto.DeductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or reason"
//	@Failure		404		{object}	utils.Response	"Holder not found"
//	@Router			/api/admin/wallet/debit [post]
func (h *WalletHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletMutationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.walletService.Deduct(req.UserID, req.Amount, req.Reason, req.CreatedBy)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeductResponseDTO{
		Requested:   result.Requested,
		Applied:     result.Applied,
		Clamped:     result.Clamped,
		Balance:     result.Balance,
		Transaction: toTransactionDTO(result.Transaction),
	})
}

// GetUsers godoc
//
//	@Summary		Get the holder roster
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Success		200	{array}	dto.UserDTO
//	@Router			/api/admin/users [get]
func (h *WalletHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.walletService.Users()
	response := make([]dto.UserDTO, len(users))
	for i, user := range users {
		response[i] = toUserDTO(user)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAllTransactions godoc
//
//	@Summary		Get the full transaction ledger
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Success		200	{array}	dto.TransactionDTO
//	@Router			/api/admin/transactions [get]
func (h *WalletHandler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(h.walletService.AllTransactions()))
}

func respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidAmount), errors.Is(err, store.ErrEmptyReason):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toUserDTO(user domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:             user.ID,
		Name:           user.Name,
		HolderID:       user.HolderID,
		Email:          user.Email,
		RBQBalance:     user.RBQBalance,
		KYCStatus:      user.KYCStatus,
		JoinDate:       user.JoinDate.Format("2006-01-02"),
		Manager:        user.Manager,
		ManagerContact: user.ManagerContact,
	}
}

func toTransactionDTO(txn domain.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:        txn.ID,
		UserID:    txn.UserID,
		Type:      txn.Kind,
		Amount:    txn.Amount,
		Reason:    txn.Reason,
		Date:      txn.Date.Format("2006-01-02"),
		CreatedBy: txn.CreatedBy,
	}
}

func toTransactionDTOs(txns []domain.Transaction) []dto.TransactionDTO {
	response := make([]dto.TransactionDTO, len(txns))
	for i, txn := range txns {
		response[i] = toTransactionDTO(txn)
	}
	return response
}
