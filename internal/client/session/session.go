// Package session owns the login credential: restoring it from persistence,
// exchanging a candidate pair for a confirmed one, and attaching it to
// outbound requests as HTTP Basic auth.
package session

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/session/credstore"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

const (
	// CookieName is the single persisted entry holding the encoded credential.
	CookieName = "myfleetrobot-auth"
	// CredentialTTL is the sliding expiry window; every successful Restore
	// re-persists the credential with a fresh window.
	CredentialTTL = 7 * 24 * time.Hour
)

// Credential is the identity/secret pair representing a login. It is encoded
// (not encrypted) when persisted.
type Credential struct {
	Identity string
	Secret   string
}

// encode renders the credential the way it travels on the wire: the Basic
// auth payload base64(identity:secret).
func (c Credential) encode() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Identity + ":" + c.Secret))
}

func decodeCredential(value string) (Credential, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return Credential{}, err
	}
	identity, secret, ok := strings.Cut(string(raw), ":")
	if !ok || identity == "" {
		return Credential{}, errors.New("malformed credential")
	}
	return Credential{Identity: identity, Secret: secret}, nil
}

// Session is the derived, in-memory view of the credential. The zero value
// is the unauthenticated session.
type Session struct {
	Credential *Credential
}

func (s Session) Authenticated() bool { return s.Credential != nil }

// Tenant returns the team identity of the session, or "" when absent.
func (s Session) Tenant() string {
	if s.Credential == nil {
		return ""
	}
	return s.Credential.Identity
}

// LoginClient is the one remote call the session store makes itself.
// api.Client satisfies it.
type LoginClient interface {
	Login(ctx context.Context, team, password string) (models.Login, error)
}

// Store owns the credential and its persisted form. Memory and persistence
// are always updated together under the mutex; a credential that is persisted
// but not in memory (or vice versa) never becomes observable.
type Store struct {
	jar credstore.Store
	log logging.Logger
	now func() time.Time

	mu      sync.Mutex
	current *Credential
}

func NewStore(jar credstore.Store, log logging.Logger) *Store {
	return &Store{jar: jar, log: log.With("component", "session"), now: time.Now}
}

// Restore reads the persisted credential. When present and well-formed it is
// re-persisted with a fresh expiry window and the populated session is
// returned. Malformed or missing values degrade to the empty session;
// Restore never fails.
func (s *Store) Restore(ctx context.Context) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.jar.Get(ctx, CookieName)
	if err != nil {
		s.log.Warn(ctx, "credential read failed", "error", err)
		s.current = nil
		return Session{}
	}
	if value == "" {
		s.current = nil
		return Session{}
	}

	cred, err := decodeCredential(value)
	if err != nil {
		s.log.Warn(ctx, "discarding malformed credential", "error", err)
		s.current = nil
		_ = s.jar.Remove(ctx, CookieName)
		return Session{}
	}

	if err := s.jar.Set(ctx, CookieName, value, s.now().Add(CredentialTTL)); err != nil {
		s.log.Warn(ctx, "credential expiry refresh failed", "error", err)
	}
	s.current = &cred
	return s.sessionLocked()
}

// Login exchanges the candidate pair with the server. Any outcome other than
// status "ok" collapses into api.ErrInvalidCredentials for the caller; the
// underlying cause is only logged.
func (s *Store) Login(ctx context.Context, c LoginClient, identity, secret string) (Session, error) {
	result, err := c.Login(ctx, identity, secret)
	if err != nil {
		s.log.Warn(ctx, "login transport failure", "team", identity, "error", err)
		return Session{}, api.ErrInvalidCredentials
	}
	if result.Status != "ok" {
		s.log.Warn(ctx, "login rejected", "team", identity, "status", result.Status)
		return Session{}, api.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cred := Credential{Identity: identity, Secret: secret}
	if err := s.jar.Set(ctx, CookieName, cred.encode(), s.now().Add(CredentialTTL)); err != nil {
		s.log.Warn(ctx, "credential persist failed", "error", err)
	}
	s.current = &cred
	s.log.Info(ctx, "logged in", "team", identity)
	return s.sessionLocked(), nil
}

// Logout clears both the persisted and in-memory credential. Safe to call
// with no active session.
func (s *Store) Logout(ctx context.Context) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.jar.Remove(ctx, CookieName); err != nil {
		s.log.Warn(ctx, "credential remove failed", "error", err)
	}
	s.current = nil
	return Session{}
}

// Attach decorates req with Basic auth when a credential is present.
// Implements api.Authorizer.
func (s *Store) Attach(req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		req.SetBasicAuth(s.current.Identity, s.current.Secret)
	}
}

// Current returns a snapshot of the session. The credential is copied so no
// caller ever aliases the store's own record.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked()
}

func (s *Store) sessionLocked() Session {
	if s.current == nil {
		return Session{}
	}
	cred := *s.current
	return Session{Credential: &cred}
}
