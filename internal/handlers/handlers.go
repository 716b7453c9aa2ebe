package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rubyconworld/rbq-platform/docs"
	authhandlers "github.com/rubyconworld/rbq-platform/internal/handlers/auth"
	ordershandlers "github.com/rubyconworld/rbq-platform/internal/handlers/orders"
	rateshandlers "github.com/rubyconworld/rbq-platform/internal/handlers/rates"
	wallethandlers "github.com/rubyconworld/rbq-platform/internal/handlers/wallet"
	withdrawalshandlers "github.com/rubyconworld/rbq-platform/internal/handlers/withdrawals"
	"github.com/rubyconworld/rbq-platform/internal/service"
	"github.com/rubyconworld/rbq-platform/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	OAuth(w http.ResponseWriter, r *http.Request)
}

type RateHandler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	SetRate(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetAllTransactions(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	GetAllOrders(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	GetRecords(w http.ResponseWriter, r *http.Request)
	AddRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	RateHandler       RateHandler
	WalletHandler     WalletHandler
	OrderHandler      OrderHandler
	WithdrawalHandler WithdrawalHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		RateHandler:       rateshandlers.New(s.RateService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		OrderHandler:      ordershandlers.New(s.SellOrderService),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, m *auth.Middleware, events http.HandlerFunc) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/session", h.AuthHandler.Session)
			r.Get("/oauth/{provider}", h.AuthHandler.OAuth)
		})

		r.Group(func(r chi.Router) {
			r.Use(m.Authenticate)
			r.Route("/user", func(r chi.Router) {
				r.Get("/wallet", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Route("/orders", func(r chi.Router) {
					r.Post("/", h.OrderHandler.CreateOrder)
					r.Get("/", h.OrderHandler.GetOrders)
					r.Delete("/{orderID}", h.OrderHandler.CancelOrder)
				})
			})
			r.Route("/rates", func(r chi.Router) {
				r.Get("/current", h.RateHandler.GetCurrent)
				r.Get("/history", h.RateHandler.GetHistory)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(m.RequireAdmin)
			r.Post("/rate", h.RateHandler.SetRate)
			r.Post("/wallet/credit", h.WalletHandler.Credit)
			r.Post("/wallet/debit", h.WalletHandler.Debit)
			r.Get("/users", h.WalletHandler.GetUsers)
			r.Get("/transactions", h.WalletHandler.GetAllTransactions)
			r.Get("/orders", h.OrderHandler.GetAllOrders)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetRecords)
				r.Post("/", h.WithdrawalHandler.AddRecord)
				r.Put("/{id}", h.WithdrawalHandler.UpdateRecord)
				r.Delete("/{id}", h.WithdrawalHandler.DeleteRecord)
			})
		})

		r.Get("/events", events)
	})

	return r
}
