package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const timeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

// User is the principal the auth service reports for a session token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the token bundle returned by sign-up and password sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// serviceError is the error envelope the auth service responds with.
type serviceError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
	Msg         string `json:"msg"`
}

func (e serviceError) message() string {
	switch {
	case e.Description != "":
		return e.Description
	case e.Msg != "":
		return e.Msg
	case e.Error != "":
		return e.Error
	}
	return "auth service error"
}

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a GoTrue-style auth backend. The service is opaque:
// nothing here depends on more than its REST surface.
type Client struct {
	baseURL string
	anonKey string
	client  HTTPClientI
}

func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// SetClient swaps the underlying HTTP client, used by tests.
func (c *Client) SetClient(client HTTPClientI) {
	c.client = client
}

// SignUp registers a new account. redirectTo is forwarded so the
// confirmation email lands back on the dashboard.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (*Session, error) {
	endpoint := c.baseURL + "/auth/v1/signup"
	if redirectTo != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.post(ctx, endpoint, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.post(ctx, endpoint, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// OAuthURL builds the authorize redirect for an OAuth provider. The
// browser follows this URL; no request is made here.
func (c *Client) OAuthURL(provider, redirectTo string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	query := url.Values{"provider": {provider}}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/auth/v1/authorize?" + query.Encode(), nil
}

// SignOut revokes the session behind token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.post(ctx, c.baseURL+"/auth/v1/logout", token, nil, nil)
}

// GetUser resolves the principal behind token.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", http.NoBody)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) post(ctx context.Context, endpoint, token string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return err
	}
	c.setHeaders(req, token)
	return c.do(req, out)
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, out any) (err error) {
	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("auth service request failed", zap.Error(err))
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var svcErr serviceError
		if json.Unmarshal(respBody, &svcErr) != nil {
			return fmt.Errorf("auth service returned status %d", resp.StatusCode)
		}
		return errors.New(svcErr.message())
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
