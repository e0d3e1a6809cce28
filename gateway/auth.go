package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Account is the identity returned by the auth provider.
type Account struct {
	UID         string `json:"localId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	IDToken     string `json:"idToken"`
}

// Auth is the slice of the identity provider this API consumes. Every call
// is fallible; callers report failure and change no local state.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignUp(ctx context.Context, name, email, password string) (*Account, error)
	UpdateProfile(ctx context.Context, idToken, displayName string) error
	UpdateEmail(ctx context.Context, idToken, newEmail string) error
	UpdatePassword(ctx context.Context, idToken, newPassword string) error
}

// AuthClient talks to the hosted identity service over its REST API.
type AuthClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAuthClient(baseURL, apiKey string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type authError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// post sends a JSON body to an accounts endpoint and decodes the response
// into out when it is non-nil.
func (a *AuthClient) post(ctx context.Context, action string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/accounts:%s?key=%s", a.baseURL, action, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstream authError
		if err := json.NewDecoder(resp.Body).Decode(&upstream); err == nil && upstream.Error.Message != "" {
			return fmt.Errorf("auth gateway: %s", upstream.Error.Message)
		}
		return fmt.Errorf("auth gateway: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*Account, error) {
	var acct Account
	err := a.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &acct)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (a *AuthClient) SignUp(ctx context.Context, name, email, password string) (*Account, error) {
	var acct Account
	err := a.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &acct)
	if err != nil {
		return nil, err
	}

	// The sign-up endpoint ignores display names, so stamp it in a
	// follow-up profile update.
	if name != "" {
		if err := a.UpdateProfile(ctx, acct.IDToken, name); err != nil {
			return nil, err
		}
		acct.DisplayName = name
	}
	return &acct, nil
}

func (a *AuthClient) UpdateProfile(ctx context.Context, idToken, displayName string) error {
	return a.post(ctx, "update", map[string]any{
		"idToken":     idToken,
		"displayName": displayName,
	}, nil)
}

func (a *AuthClient) UpdateEmail(ctx context.Context, idToken, newEmail string) error {
	return a.post(ctx, "update", map[string]any{
		"idToken":           idToken,
		"email":             newEmail,
		"returnSecureToken": true,
	}, nil)
}

func (a *AuthClient) UpdatePassword(ctx context.Context, idToken, newPassword string) error {
	return a.post(ctx, "update", map[string]any{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": true,
	}, nil)
}
