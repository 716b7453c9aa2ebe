package service

import (
	"github.com/rubyconworld/rbq-platform/internal/authclient"
	"github.com/rubyconworld/rbq-platform/internal/store"

	"github.com/rubyconworld/rbq-platform/internal/service/authservice"
	"github.com/rubyconworld/rbq-platform/internal/service/rateservice"
	"github.com/rubyconworld/rbq-platform/internal/service/sellorderservice"
	"github.com/rubyconworld/rbq-platform/internal/service/walletservice"
	"github.com/rubyconworld/rbq-platform/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       *authservice.Service
	RateService       *rateservice.Service
	WalletService     *walletservice.Service
	SellOrderService  *sellorderservice.Service
	WithdrawalService *withdrawalservice.Service
}

func New(st *store.Store, client *authclient.Client, watcher *authclient.Watcher) *Services {
	return &Services{
		AuthService:       authservice.New(client, watcher, st),
		RateService:       rateservice.New(st),
		WalletService:     walletservice.New(st),
		SellOrderService:  sellorderservice.New(st),
		WithdrawalService: withdrawalservice.New(st),
	}
}
