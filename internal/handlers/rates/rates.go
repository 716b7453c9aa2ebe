package rates

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/dto"
	"github.com/rubyconworld/rbq-platform/internal/service/rateservice"
	"github.com/rubyconworld/rbq-platform/internal/store"
	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type Service interface {
	Update(rate float64, updatedBy string) (domain.PriceEntry, error)
	Current() rateservice.CurrentRate
	History() []domain.PriceEntry
}

type RateHandler struct {
	rateService Service
}

func New(rateService Service) *RateHandler {
	return &RateHandler{
		rateService: rateService,
	}
}

// GetCurrent godoc
//
//	@Summary		Get the current RBQ rate
//	@Description	Current RBQ to INR rate with formatted value and daily/weekly change
//	@Tags			Rates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CurrentRateResponseDTO
//	@Router			/api/rates/current [get]
func (h *RateHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	current := h.rateService.Current()
	utils.RespondWithJSON(w, http.StatusOK, dto.CurrentRateResponseDTO{
		Rate:          current.Rate,
		FormattedRate: current.FormattedRate,
		DailyChange:   dto.ChangeDTO(current.Daily),
		WeeklyChange:  dto.ChangeDTO(current.Weekly),
	})
}

// GetHistory godoc
//
//	@Summary		Get rate history
//	@Description	Price history entries, newest first
//	@Tags			Rates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.PriceEntryDTO
//	@Router			/api/rates/history [get]
func (h *RateHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history := h.rateService.History()
	response := make([]dto.PriceEntryDTO, len(history))
	for i, entry := range history {
		response[i] = toPriceEntryDTO(entry)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetRate godoc
//
//	@Summary		Set the RBQ rate
//	@Description	Update the current rate and append a price history entry
//	@Tags			Admin
//	@Security		AdminKey
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetRateRequestDTO	true	"New rate"
//	@Success		200		{object}	dto.PriceEntryDTO
//	@Failure		400		{object}	utils.Response	"Invalid rate"
//	@Failure		403		{object}	utils.Response	"Missing or invalid admin key"
//	@Router			/api/admin/rate [post]
func (h *RateHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry, err := h.rateService.Update(req.Rate, req.UpdatedBy)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRate) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPriceEntryDTO(entry))
}

func toPriceEntryDTO(entry domain.PriceEntry) dto.PriceEntryDTO {
	return dto.PriceEntryDTO{
		ID:        entry.ID,
		Price:     entry.Price,
		Date:      entry.Date.Format("2006-01-02"),
		UpdatedBy: entry.UpdatedBy,
	}
}
