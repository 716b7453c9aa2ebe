package withdrawals

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/dto"
	"github.com/rubyconworld/rbq-platform/internal/service/withdrawalservice"
	"github.com/rubyconworld/rbq-platform/internal/store"
	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type Service interface {
	Add(record domain.WithdrawalRecord) (domain.WithdrawalRecord, error)
	Update(id string, record domain.WithdrawalRecord) (domain.WithdrawalRecord, error)
	Delete(id string) error
	List() []domain.WithdrawalRecord
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// GetRecords godoc
//
//	@Summary		Get withdrawal records
//	@Description	Admin-maintained withdrawal tracking rows, newest first
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Success		200	{array}	dto.WithdrawalRecordDTO
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records := h.withdrawalService.List()
	response := make([]dto.WithdrawalRecordDTO, len(records))
	for i, record := range records {
		response[i] = toRecordDTO(record)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddRecord godoc
//
//	@Summary		Add a withdrawal record
//	@Tags			Admin
//	@Security		AdminKey
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRecordRequestDTO	true	"Record payload"
//	@Success		200		{object}	dto.WithdrawalRecordDTO
//	@Failure		400		{object}	utils.Response	"Invalid record"
//	@Router			/api/admin/withdrawals [post]
func (h *WithdrawalHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := h.withdrawalService.Add(fromRecordDTO(req))
	if err != nil {
		respondRecordError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRecordDTO(record))
}

// UpdateRecord godoc
//
//	@Summary		Update a withdrawal record
//	@Tags			Admin
//	@Security		AdminKey
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Record ID"
//	@Param			request	body		dto.WithdrawalRecordRequestDTO	true	"Record payload"
//	@Success		200		{object}	dto.WithdrawalRecordDTO
//	@Failure		400		{object}	utils.Response	"Invalid record"
//	@Failure		404		{object}	utils.Response	"Record not found"
//	@Router			/api/admin/withdrawals/{id} [put]
func (h *WithdrawalHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.WithdrawalRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := h.withdrawalService.Update(id, fromRecordDTO(req))
	if err != nil {
		respondRecordError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRecordDTO(record))
}

// DeleteRecord godoc
//
//	@Summary		Delete a withdrawal record
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Param			id	path	string	true	"Record ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Record not found"
//	@Router			/api/admin/withdrawals/{id} [delete]
func (h *WithdrawalHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.withdrawalService.Delete(id); err != nil {
		respondRecordError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, withdrawalservice.ErrInvalidStatus),
		errors.Is(err, withdrawalservice.ErrInvalidPaymentMethod),
		errors.Is(err, withdrawalservice.ErrInvalidBankReference),
		errors.Is(err, withdrawalservice.ErrMissingHolder):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func fromRecordDTO(req dto.WithdrawalRecordRequestDTO) domain.WithdrawalRecord {
	return domain.WithdrawalRecord{
		HolderName:    req.HolderName,
		HolderID:      req.HolderID,
		WalletAddress: req.WalletAddress,
		AmountRBQ:     req.AmountRBQ,
		AmountINR:     req.AmountINR,
		TxnHash:       req.TxnHash,
		Date:          req.Date,
		Time:          req.Time,
		PaymentMethod: req.PaymentMethod,
		BankReference: req.BankReference,
		Status:        req.Status,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
	}
}

func toRecordDTO(record domain.WithdrawalRecord) dto.WithdrawalRecordDTO {
	return dto.WithdrawalRecordDTO{
		ID:            record.ID,
		HolderName:    record.HolderName,
		HolderID:      record.HolderID,
		WalletAddress: record.WalletAddress,
		AmountRBQ:     record.AmountRBQ,
		AmountINR:     record.AmountINR,
		TxnHash:       record.TxnHash,
		Date:          record.Date,
		Time:          record.Time,
		PaymentMethod: record.PaymentMethod,
		BankReference: record.BankReference,
		Status:        record.Status,
		Notes:         record.Notes,
		CreatedBy:     record.CreatedBy,
		CreatedAt:     record.CreatedAt.Format("2006-01-02"),
	}
}
