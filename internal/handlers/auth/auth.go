package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rubyconworld/rbq-platform/internal/authclient"
	"github.com/rubyconworld/rbq-platform/internal/domain"
	"github.com/rubyconworld/rbq-platform/internal/dto"
	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password, redirectTo string) (*authclient.Session, error)
	Login(ctx context.Context, email, password string) (*authclient.Session, error)
	OAuthURL(provider, redirectTo string) (string, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*authclient.User, *domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Sign up with email and password via the external auth service
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or sign-up rejected"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	session, err := h.authService.Register(r.Context(), req.Email, req.Password, req.RedirectTo)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Sign in with the password grant and receive a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

// Logout godoc
//
//	@Summary		Sign out
//	@Description	Revoke the session token at the auth service
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Signed out"
//	@Failure		401	{object}	utils.Response	"Missing or rejected token"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.Logout(r.Context(), token); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Signed out"})
}

// Session godoc
//
//	@Summary		Resolve the current session
//	@Description	Validate the session token and return the principal with its token holder account
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"Missing or rejected token"
//	@Router			/api/auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	principal, holder, err := h.authService.Session(r.Context(), token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	resp := dto.SessionInfoResponseDTO{
		Principal: dto.PrincipalDTO{ID: principal.ID, Email: principal.Email, Role: principal.Role},
	}
	if holder != nil {
		holderDTO := toUserDTO(*holder)
		resp.Holder = &holderDTO
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// OAuth godoc
//
//	@Summary		Start an OAuth sign-in
//	@Description	Redirect to the auth service authorize URL for the given provider
//	@Tags			Auth
//	@Param			provider	path	string	true	"OAuth provider"	example(google)
//	@Param			redirect_to	query	string	false	"Post-login redirect URL"
//	@Success		302
//	@Failure		400	{object}	utils.Response	"Unknown provider"
//	@Router			/api/auth/oauth/{provider} [get]
func (h *AuthHandler) OAuth(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	url, err := h.authService.OAuthURL(provider, r.URL.Query().Get("redirect_to"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func toSessionDTO(session *authclient.Session) dto.SessionResponseDTO {
	return dto.SessionResponseDTO{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		User: dto.PrincipalDTO{
			ID:    session.User.ID,
			Email: session.User.Email,
			Role:  session.User.Role,
		},
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
