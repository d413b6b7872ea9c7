package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AuthProviderService is the call boundary to the hosted auth provider.
// Token issuance, session handling and credential storage all live on the
// provider side; this client only forwards requests and reports failures.
type AuthProviderService interface {
	SignUp(ctx context.Context, email, password string) (*ProviderSession, error)
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)
	UpdatePassword(ctx context.Context, email, newPassword string) error
}

// ProviderSession is the token pair the provider issues on signup/login.
type ProviderSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
}

type authProviderService struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewAuthProviderService(baseURL, apiKey string) AuthProviderService {
	return &authProviderService{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *authProviderService) SignUp(ctx context.Context, email, password string) (*ProviderSession, error) {
	return s.postSession(ctx, "/auth/v1/signup", credentialsRequest{Email: email, Password: password})
}

func (s *authProviderService) SignIn(ctx context.Context, email, password string) (*ProviderSession, error) {
	return s.postSession(ctx, "/auth/v1/token?grant_type=password", credentialsRequest{Email: email, Password: password})
}

func (s *authProviderService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": newPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal password update: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL+"/auth/v1/user", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create provider request: %v", err)
	}
	s.setHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *authProviderService) postSession(ctx context.Context, path string, body credentialsRequest) (*ProviderSession, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %v", err)
	}
	s.setHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("auth provider returned status %d: %s", resp.StatusCode, string(data))
	}

	session := &ProviderSession{}
	if err := json.NewDecoder(resp.Body).Decode(session); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %v", err)
	}
	return session, nil
}

func (s *authProviderService) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)
}
