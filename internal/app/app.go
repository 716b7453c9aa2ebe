package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/authclient"
	"github.com/rubyconworld/rbq-platform/internal/config"
	"github.com/rubyconworld/rbq-platform/internal/handlers"
	"github.com/rubyconworld/rbq-platform/internal/service"
	"github.com/rubyconworld/rbq-platform/internal/store"
	"github.com/rubyconworld/rbq-platform/internal/ws"
	"github.com/rubyconworld/rbq-platform/pkg/auth"
	"github.com/rubyconworld/rbq-platform/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	store   *store.Store
	watcher *authclient.Watcher
	hub     *ws.Hub

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	client := authclient.New(cfg.AuthURL, cfg.AuthAnonKey)

	a.cfg = cfg
	a.store = store.New()
	a.watcher = authclient.NewWatcher(client, cfg.SessionPollInterval)
	a.srv = service.New(a.store, client, a.watcher)
	a.api = handlers.New(a.srv)
	a.hub = ws.NewHub(a.store)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startEventHub(ctx)
	a.startSessionWatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	middleware := auth.NewMiddleware(auth.NewJWTService(a.cfg.AuthJWTSecret), &auth.HashService{}, a.cfg.AdminKeyHash)
	a.api.InitRoutes(router, middleware, a.hub.ServeHTTP)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startEventHub(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()
}

func (a *Application) startSessionWatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.watcher.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	if a.store != nil {
		a.store.Close()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
