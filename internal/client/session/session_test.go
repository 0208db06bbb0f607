package session

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// ---- fakes ----

type jarEntry struct {
	value   string
	expires time.Time
}

type fakeJar struct {
	entries map[string]jarEntry
	getErr  error
	setErr  error
}

func newFakeJar() *fakeJar { return &fakeJar{entries: map[string]jarEntry{}} }

func (j *fakeJar) Get(ctx context.Context, name string) (string, error) {
	if j.getErr != nil {
		return "", j.getErr
	}
	e, ok := j.entries[name]
	if !ok {
		return "", nil
	}
	return e.value, nil
}

func (j *fakeJar) Set(ctx context.Context, name, value string, expires time.Time) error {
	if j.setErr != nil {
		return j.setErr
	}
	j.entries[name] = jarEntry{value: value, expires: expires}
	return nil
}

func (j *fakeJar) Remove(ctx context.Context, name string) error {
	delete(j.entries, name)
	return nil
}

type fakeLogin struct {
	result models.Login
	err    error

	lastTeam     string
	lastPassword string
}

func (f *fakeLogin) Login(ctx context.Context, team, password string) (models.Login, error) {
	f.lastTeam = team
	f.lastPassword = password
	return f.result, f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- tests ----

func TestLogin_PersistsAndPopulatesSession(t *testing.T) {
	ctx := context.Background()
	jar := newFakeJar()
	s := NewStore(jar, testLogger())
	lc := &fakeLogin{result: models.Login{Status: "ok"}}

	sess, err := s.Login(ctx, lc, "spaarne", "geheim")
	require.NoError(t, err)
	require.True(t, sess.Authenticated())
	require.Equal(t, "spaarne", sess.Tenant())
	require.Equal(t, "spaarne", lc.lastTeam)
	require.Equal(t, "geheim", lc.lastPassword)

	want := base64.StdEncoding.EncodeToString([]byte("spaarne:geheim"))
	require.Equal(t, want, jar.entries[CookieName].value)
}

func TestLogin_CredentialRoundTripAcrossRestart(t *testing.T) {
	ctx := context.Background()
	jar := newFakeJar()
	s := NewStore(jar, testLogger())

	_, err := s.Login(ctx, &fakeLogin{result: models.Login{Status: "ok"}}, "spaarne", "geheim")
	require.NoError(t, err)

	// Simulated reload: a fresh store over the same persistence.
	s2 := NewStore(jar, testLogger())
	sess := s2.Restore(ctx)
	require.True(t, sess.Authenticated())
	require.Equal(t, "spaarne", sess.Credential.Identity)
	require.Equal(t, "geheim", sess.Credential.Secret)
}

func TestRestore_ExtendsExpiry(t *testing.T) {
	ctx := context.Background()
	jar := newFakeJar()
	s := NewStore(jar, testLogger())

	_, err := s.Login(ctx, &fakeLogin{result: models.Login{Status: "ok"}}, "spaarne", "geheim")
	require.NoError(t, err)
	first := jar.entries[CookieName].expires

	s.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	sess := s.Restore(ctx)
	require.True(t, sess.Authenticated())
	require.True(t, jar.entries[CookieName].expires.After(first),
		"restore must slide the expiry window forward")
}

func TestRestore_MissingCredentialIsEmptySession(t *testing.T) {
	s := NewStore(newFakeJar(), testLogger())
	sess := s.Restore(context.Background())
	require.False(t, sess.Authenticated())
	require.Empty(t, sess.Tenant())
}

func TestRestore_MalformedCredentialDegradesToLogout(t *testing.T) {
	ctx := context.Background()
	jar := newFakeJar()
	jar.entries[CookieName] = jarEntry{value: "%%%not-base64%%%"}
	s := NewStore(jar, testLogger())

	sess := s.Restore(ctx)
	require.False(t, sess.Authenticated())
	_, stillThere := jar.entries[CookieName]
	require.False(t, stillThere, "malformed value must be discarded")
}

func TestRestore_ReadErrorDegradesToEmpty(t *testing.T) {
	jar := newFakeJar()
	jar.getErr = errors.New("disk on fire")
	s := NewStore(jar, testLogger())

	sess := s.Restore(context.Background())
	require.False(t, sess.Authenticated())
}

func TestLogin_RejectionAndTransportFailureLookAlike(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFakeJar(), testLogger())

	_, errRejected := s.Login(ctx, &fakeLogin{result: models.Login{Status: "Error"}}, "t", "p")
	_, errTransport := s.Login(ctx, &fakeLogin{err: api.ErrUnavailable}, "t", "p")

	require.ErrorIs(t, errRejected, api.ErrInvalidCredentials)
	require.ErrorIs(t, errTransport, api.ErrInvalidCredentials)
}

func TestLogout_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	jar := newFakeJar()
	s := NewStore(jar, testLogger())

	_, err := s.Login(ctx, &fakeLogin{result: models.Login{Status: "ok"}}, "spaarne", "geheim")
	require.NoError(t, err)

	sess := s.Logout(ctx)
	require.False(t, sess.Authenticated())
	sess = s.Logout(ctx)
	require.False(t, sess.Authenticated())
	require.Empty(t, jar.entries)
}

func TestAttach_SetsBasicAuthOnlyWhenPresent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFakeJar(), testLogger())

	req, _ := http.NewRequest(http.MethodGet, "http://example/booking", nil)
	s.Attach(req)
	_, _, ok := req.BasicAuth()
	require.False(t, ok, "no credential, no header")

	_, err := s.Login(ctx, &fakeLogin{result: models.Login{Status: "ok"}}, "spaarne", "geheim")
	require.NoError(t, err)

	s.Attach(req)
	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	require.Equal(t, "spaarne", user)
	require.Equal(t, "geheim", pass)
}

func TestCurrent_ReturnsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFakeJar(), testLogger())
	_, err := s.Login(ctx, &fakeLogin{result: models.Login{Status: "ok"}}, "spaarne", "geheim")
	require.NoError(t, err)

	sess := s.Current()
	sess.Credential.Secret = "tampered"
	require.Equal(t, "geheim", s.Current().Credential.Secret)
}
