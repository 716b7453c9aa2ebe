package authservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/authclient"
	"github.com/rubyconworld/rbq-platform/internal/domain"
)

type AuthClient interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*authclient.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*authclient.Session, error)
	OAuthURL(provider, redirectTo string) (string, error)
	SignOut(ctx context.Context, token string) error
	GetUser(ctx context.Context, token string) (*authclient.User, error)
}

type SessionWatcher interface {
	Track(token string, user *authclient.User)
	Forget(token string)
}

type Store interface {
	User(userID string) *domain.User
	UserByEmail(email string) *domain.User
	AddUser(id, name, email string) (domain.User, error)
}

// Service bridges the external auth backend and the holder roster:
// authentication itself is entirely the backend's business, while the
// roster entry for a principal is provisioned here on first contact.
type Service struct {
	client  AuthClient
	watcher SessionWatcher
	store   Store
}

func New(client AuthClient, watcher SessionWatcher, store Store) *Service {
	return &Service{
		client:  client,
		watcher: watcher,
		store:   store,
	}
}

func (s *Service) Register(ctx context.Context, email, password, redirectTo string) (*authclient.Session, error) {
	session, err := s.client.SignUp(ctx, email, password, redirectTo)
	if err != nil {
		zap.L().Info("sign-up rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.ensureHolder(session.User)
	if session.AccessToken != "" {
		s.watcher.Track(session.AccessToken, &session.User)
	}
	zap.L().Info("user signed up", zap.String("email", email))
	return session, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*authclient.Session, error) {
	session, err := s.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		zap.L().Info("sign-in rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.ensureHolder(session.User)
	s.watcher.Track(session.AccessToken, &session.User)
	zap.L().Info("user signed in", zap.String("email", email))
	return session, nil
}

func (s *Service) OAuthURL(provider, redirectTo string) (string, error) {
	return s.client.OAuthURL(provider, redirectTo)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.client.SignOut(ctx, token); err != nil {
		zap.L().Error("sign-out failed", zap.Error(err))
		return err
	}
	s.watcher.Forget(token)
	return nil
}

// Session resolves the principal behind token and the holder it maps
// to. The holder is provisioned on the fly for principals signing in
// for the first time.
func (s *Service) Session(ctx context.Context, token string) (*authclient.User, *domain.User, error) {
	principal, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	holder := s.ensureHolder(*principal)
	return principal, holder, nil
}

func (s *Service) ensureHolder(principal authclient.User) *domain.User {
	if principal.Email == "" {
		return nil
	}
	if holder := s.store.UserByEmail(principal.Email); holder != nil {
		return holder
	}

	holder, err := s.store.AddUser(principal.ID, "", principal.Email)
	if err != nil {
		// A concurrent session already provisioned the holder.
		if existing := s.store.UserByEmail(principal.Email); existing != nil {
			return existing
		}
		zap.L().Error("failed to provision holder", zap.String("email", principal.Email), zap.Error(err))
		return nil
	}
	return &holder
}
