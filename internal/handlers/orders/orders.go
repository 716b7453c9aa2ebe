package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/dto"
	"github.com/rubyconworld/rbq-platform/internal/store"
	"github.com/rubyconworld/rbq-platform/pkg/auth"
	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type Service interface {
	Create(userID string, tokenAmount, minimumPrice float64) (domain.SellOrder, error)
	Cancel(userID, orderID string) (domain.SellOrder, error)
	UserOrders(userID string) []domain.SellOrder
	AllOrders() []domain.SellOrder
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a sell order
//	@Description	Reserve tokens from the holder balance and list them for sale
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSellOrderRequestDTO	true	"Order request"
//	@Success		200		{object}	dto.SellOrderDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or price"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateSellOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.Create(userID, req.TokenAmount, req.MinimumPrice)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, store.ErrInvalidAmount), errors.Is(err, store.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrders godoc
//
//	@Summary		Get the authenticated holder's sell orders
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SellOrderDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(h.orderService.UserOrders(userID)))
}

// CancelOrder godoc
//
//	@Summary		Cancel a sell order
//	@Description	Cancel one of the holder's active orders and restore the reserved tokens
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	dto.SellOrderDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order is not active"
//	@Router			/api/user/orders/{orderID} [delete]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orderService.Cancel(userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrOrderNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetAllOrders godoc
//
//	@Summary		Get all sell orders
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Success		200	{array}	dto.SellOrderDTO
//	@Router			/api/admin/orders [get]
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(h.orderService.AllOrders()))
}

func toOrderDTO(order domain.SellOrder) dto.SellOrderDTO {
	return dto.SellOrderDTO{
		ID:            order.ID,
		UserID:        order.UserID,
		UserName:      order.UserName,
		HolderID:      order.HolderID,
		TokenAmount:   order.TokenAmount,
		MinimumPrice:  order.MinimumPrice,
		PricePerToken: order.PricePerToken,
		Status:        order.Status,
		CreatedDate:   order.CreatedDate.Format("2006-01-02"),
		UpdatedDate:   order.UpdatedDate.Format("2006-01-02"),
	}
}

func toOrderDTOs(orders []domain.SellOrder) []dto.SellOrderDTO {
	response := make([]dto.SellOrderDTO, len(orders))
	for i, order := range orders {
		response[i] = toOrderDTO(order)
	}
	return response
}
