package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// Authorizer decorates an outbound request with the current credential, if
// any. Requests go out unauthenticated when no credential is present; the
// server rejects them when auth is required.
type Authorizer interface {
	Attach(req *http.Request)
}

// RESTClient implements Client against the fleet server's HTTP endpoints.
// All paths are relative to baseURL (e.g. "http://localhost:1323/data").
type RESTClient struct {
	baseURL string
	auth    Authorizer
	http    *http.Client
	// stream has no client-level timeout: the pairing stream stays open
	// until the server closes it or ctx is canceled.
	stream *http.Client
	log    logging.Logger
}

// Option mutates a RESTClient during construction.
type Option func(*RESTClient)

// WithHTTPClient replaces the default HTTP client (used by tests).
func WithHTTPClient(c *http.Client) Option {
	return func(r *RESTClient) { r.http = c }
}

func NewRESTClient(baseURL string, auth Authorizer, timeout time.Duration, log logging.Logger, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: baseURL,
		auth:    auth,
		http:    &http.Client{Timeout: timeout},
		stream:  &http.Client{},
		log:     log.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.auth != nil {
		c.auth.Attach(req)
	}
	return req, nil
}

// do issues the request and decodes a 2xx JSON body into out (when non-nil).
// Non-2xx statuses and transport failures are mapped to the package sentinels.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		c.log.Warn(ctx, "server rejected request",
			"method", method, "path", path, "status", resp.StatusCode)
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("server error: status %d", code)
	}
}

func (c *RESTClient) Config(ctx context.Context) (models.Config, error) {
	var cfg models.Config
	err := c.do(ctx, http.MethodGet, "/config", nil, &cfg)
	return cfg, err
}

// Login posts the candidate pair. The request is deliberately sent without
// the stored credential: the endpoint is the one unauthenticated call.
func (c *RESTClient) Login(ctx context.Context, team, password string) (models.Login, error) {
	var result models.Login
	req, err := c.newRequest(ctx, http.MethodPost, "/login", models.Login{Team: team, Password: password})
	if err != nil {
		return result, err
	}
	req.Header.Del("Authorization")

	resp, err := c.http.Do(req)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return result, err
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode login response: %w", err)
	}
	return result, nil
}

func (c *RESTClient) Bookings(ctx context.Context) ([]models.Booking, error) {
	var items []models.Booking
	err := c.do(ctx, http.MethodGet, "/booking", nil, &items)
	return items, err
}

func (c *RESTClient) CreateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error) {
	var items []models.Booking
	err := c.do(ctx, http.MethodPost, "/booking", b, &items)
	return items, err
}

func (c *RESTClient) UpdateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error) {
	var items []models.Booking
	err := c.do(ctx, http.MethodPut, "/booking/"+strconv.FormatInt(b.Id, 10), b, &items)
	return items, err
}

func (c *RESTClient) DeleteBooking(ctx context.Context, id int64) ([]models.Booking, error) {
	var items []models.Booking
	err := c.do(ctx, http.MethodDelete, "/booking/"+strconv.FormatInt(id, 10), nil, &items)
	return items, err
}

func (c *RESTClient) Boats(ctx context.Context) ([]string, error) {
	var items []string
	err := c.do(ctx, http.MethodGet, "/boat", nil, &items)
	return items, err
}

func (c *RESTClient) Users(ctx context.Context) ([]models.User, error) {
	var items []models.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &items)
	return items, err
}

func (c *RESTClient) CreateUser(ctx context.Context, u models.User) ([]models.User, error) {
	var items []models.User
	err := c.do(ctx, http.MethodPost, "/users", u, &items)
	return items, err
}

func (c *RESTClient) UpdateUser(ctx context.Context, u models.User) ([]models.User, error) {
	var items []models.User
	err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(u.Id, 10), u, &items)
	return items, err
}

func (c *RESTClient) DeleteUser(ctx context.Context, id int64) ([]models.User, error) {
	var items []models.User
	err := c.do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, &items)
	return items, err
}

func (c *RESTClient) Teams(ctx context.Context) ([]models.Team, error) {
	var items []models.Team
	err := c.do(ctx, http.MethodGet, "/teams", nil, &items)
	return items, err
}

func (c *RESTClient) CreateTeam(ctx context.Context, t models.Team) ([]models.Team, error) {
	var items []models.Team
	err := c.do(ctx, http.MethodPost, "/teams", t, &items)
	return items, err
}

func (c *RESTClient) UpdateTeam(ctx context.Context, t models.Team) ([]models.Team, error) {
	var items []models.Team
	err := c.do(ctx, http.MethodPut, "/teams/"+strconv.FormatInt(t.Id, 10), t, &items)
	return items, err
}

func (c *RESTClient) DeleteTeam(ctx context.Context, id int64) ([]models.Team, error) {
	var items []models.Team
	err := c.do(ctx, http.MethodDelete, "/teams/"+strconv.FormatInt(id, 10), nil, &items)
	return items, err
}

func (c *RESTClient) WhatsAppTargets(ctx context.Context) ([]models.WhatsAppTo, error) {
	var items []models.WhatsAppTo
	err := c.do(ctx, http.MethodGet, "/whatsappto", nil, &items)
	return items, err
}

// PairWhatsApp opens the pairing stream. The server writes one JSON-encoded
// Team per chunk; while pairing is pending the chunk carries the qrcode to
// show, and the final chunk has it cleared. fn runs for every chunk.
func (c *RESTClient) PairWhatsApp(ctx context.Context, fn func(models.Team)) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/whatsapp", nil)
	if err != nil {
		return err
	}

	resp, err := c.stream.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}

	dec := json.NewDecoder(resp.Body)
	for {
		var chunk models.Team
		if err := dec.Decode(&chunk); err != nil {
			if err == io.EOF {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("decode pairing chunk: %w", err)
		}
		fn(chunk)
	}
}

func (c *RESTClient) UnpairWhatsApp(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/whatsapp", nil, nil)
}
