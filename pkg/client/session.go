package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// State is an immutable snapshot of the session: either anonymous or
// authenticated with a token and the role claims decoded from it.
type State struct {
	Authenticated bool
	Token         string
	Email         string
	Roles         []string
}

// HasRole reports whether the session's token claims the named role.
func (s State) HasRole(name string) bool {
	for _, r := range s.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Session is the client-side authentication state machine. One instance exists
// per client process; it owns the current token and is the only component that
// mutates it. State transitions happen exclusively on login success, logout,
// or an observed 401, never silently.
type Session struct {
	baseURL string
	store   TokenStore
	http    *http.Client

	mu    sync.Mutex
	state State
	subs  []func(State)
}

// NewSession builds a Session over the given store. A previously persisted
// token is restored when it is well formed and unexpired; otherwise the store
// is cleared and the session starts anonymous. The server remains the
// authority on token validity; local decoding only seeds the UI state.
func NewSession(baseURL string, store TokenStore, httpClient *http.Client) (*Session, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	s := &Session{baseURL: baseURL, store: store, http: httpClient}

	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load persisted token: %w", err)
	}
	if token != "" {
		email, roles, exp, err := decodeClaims(token)
		if err != nil || !exp.After(time.Now()) {
			_ = store.Clear()
		} else {
			s.state = State{Authenticated: true, Token: token, Email: email, Roles: roles}
		}
	}
	return s, nil
}

// Subscribe registers fn to be invoked on every state transition. Callbacks
// run synchronously, outside the session lock, in registration order.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Current returns an atomic snapshot of the session state: the token and its
// role set are always observed together.
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	st := s.state
	st.Roles = append([]string(nil), s.state.Roles...)
	return st
}

// Login authenticates against the server. On success the token is persisted
// and the state transitions to authenticated; on any failure the state is
// left untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"emailAddress": email,
		"password":     password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", resp.Status)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if payload.Token == "" {
		return fmt.Errorf("login response missing token")
	}

	claimedEmail, roles, _, err := decodeClaims(payload.Token)
	if err != nil {
		return fmt.Errorf("decode token claims: %w", err)
	}

	// Persist first: a transition is only applied once it is durable.
	if err := s.store.Save(payload.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.transition(State{Authenticated: true, Token: payload.Token, Email: claimedEmail, Roles: roles})
	return nil
}

// Logout clears the persisted token and transitions to anonymous. Idempotent:
// logging out an anonymous session succeeds and notifies subscribers.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.transition(State{})
	return nil
}

// Register creates a new account. The confirmation equality and password
// policy are checked locally before any network call; server-side failures
// are reported, never retried.
func (s *Session) Register(ctx context.Context, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(password) < 6 || len(password) > 20 {
		return ErrPasswordPolicy
	}

	body, err := json.Marshal(map[string]string{
		"emailAddress":    email,
		"password":        password,
		"confirmPassword": confirmPassword,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= 400:
		return fmt.Errorf("registration failed: %s", readError(resp))
	}
	return nil
}

// Invalidate drops the session after an external rejection (an observed 401:
// the token expired or was revoked server-side).
func (s *Session) Invalidate() {
	_ = s.store.Clear()
	s.transition(State{})
}

// transition atomically applies the new state and notifies subscribers
// outside the lock.
func (s *Session) transition(next State) {
	s.mu.Lock()
	s.state = next
	snapshot := s.snapshotLocked()
	subs := append(([]func(State))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// decodeClaims extracts email, roles and expiry from the token without
// verifying the signature; verification is the server's job.
func decodeClaims(token string) (email string, roles []string, exp time.Time, err error) {
	claims := jwt.MapClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", nil, time.Time{}, err
	}

	email, _ = claims["email"].(string)
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if name, ok := r.(string); ok {
				roles = append(roles, name)
			}
		}
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return "", nil, time.Time{}, fmt.Errorf("token missing expiry")
	}
	return email, roles, expiry.Time, nil
}

func readError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return resp.Status
}
