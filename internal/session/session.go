// Package session owns the client's belief about the current authenticated
// user. The Store is the single writer of the persisted token and the cached
// profile; every other component reads through it.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/logging"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/token"
)

// State is the session lifecycle position.
//
//	Unresolved -> (token present)  -> Resolving -> Authenticated | Anonymous
//	Unresolved -> (no token)       -> Anonymous
//
// Resolving is transient and only reachable once, at startup. Logout and an
// adapter-signaled auth failure force Anonymous; successful login/register is
// the only road back to Authenticated.
type State int

const (
	StateUnresolved State = iota
	StateResolving
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Store is the session store. Mutations happen only through its methods;
// readers get snapshots.
type Store struct {
	api    api.Client
	tokens token.Store
	log    logging.Logger

	mu      sync.RWMutex
	state   State
	user    *models.User
	loading bool
}

// NewStore builds an unresolved Store. Call Resolve once before serving
// protected views; until then Loading reports true.
func NewStore(apiClient api.Client, tokens token.Store, log logging.Logger) *Store {
	return &Store{
		api:     apiClient,
		tokens:  tokens,
		log:     log,
		state:   StateUnresolved,
		loading: true,
	}
}

// Resolve performs the one-time startup resolution. With no persisted token
// the session becomes anonymous immediately, with zero network calls. With a
// token, exactly one profile fetch is issued: success authenticates, any
// failure clears the token and degrades to anonymous. Resolve never blocks
// the application on an error and is a no-op after the first call.
func (s *Store) Resolve(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateUnresolved {
		s.mu.Unlock()
		return
	}

	tok, err := s.tokens.Load()
	if err != nil || tok == "" {
		if err != nil {
			s.log.Warn(ctx, "token load failed, starting anonymous", logging.Err(err))
		}
		s.state = StateAnonymous
		s.loading = false
		s.mu.Unlock()
		return
	}

	s.state = StateResolving
	s.mu.Unlock()

	user, err := s.api.Profile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Warn(ctx, "startup profile fetch failed", logging.Err(err))
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.log.Warn(ctx, "token clear failed", logging.Err(clearErr))
		}
		s.state = StateAnonymous
		s.user = nil
		return
	}
	s.state = StateAuthenticated
	s.user = user
	s.log.Info(ctx, "session resolved", "email", user.Email)
}

// Login authenticates with the API, persists the returned token, and caches
// the returned user. On failure the prior session state is left untouched and
// the error is propagated for display.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

// Register creates an account and establishes the session the same way Login
// does. Uniqueness and field validation are the server's responsibility.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

func (s *Store) establish(ctx context.Context, resp *models.AuthResponse) error {
	if err := s.tokens.Save(resp.Token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := resp.User
	s.user = &user
	s.state = StateAuthenticated
	s.loading = false
	s.log.Info(ctx, "session established", "email", user.Email)
	return nil
}

// Logout clears the persisted token and the cached user. It is synchronous,
// issues no network call, and is safe to call repeatedly.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn(context.Background(), "token clear failed", logging.Err(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.state = StateAnonymous
	s.loading = false
}

// Invalidate drops the session after the HTTP adapter reports an
// authentication failure. Wire it via api.HTTPClient.OnAuthFailure.
func (s *Store) Invalidate() {
	s.mu.Lock()
	already := s.state == StateAnonymous
	s.mu.Unlock()
	if already {
		return
	}
	s.log.Warn(context.Background(), "session invalidated by rejected request")
	s.Logout()
}

// UpdateProfile sends the partial update and replaces the cached user with
// the server's full response. The cached user is never merged locally, so
// server-computed fields cannot drift. On failure the cached user is
// unchanged and the error is propagated.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.UpdateProfile(ctx, update)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}
	s.user = user
	return nil
}

// User returns a copy of the cached user, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether the session answer is still pending (startup
// resolution or an in-flight profile update).
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Authenticated reports whether a user is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user != nil
}
