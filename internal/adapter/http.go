package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/utils"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// hashHeader carries the hex HMAC-SHA256 signature of the request body. The
// server only verifies it when a hash key is configured on both sides.
const hashHeader = "HashSHA256"

const defaultTimeout = 15 * time.Second

// Config configures the HTTP implementation of [ServerAdapter].
type Config struct {
	// BaseURL is the server address, e.g. "http://localhost:8080".
	// A missing scheme defaults to http.
	BaseURL string

	// HashKey enables HMAC signing of request bodies when non-empty.
	// Must match the server's hash key for the integrity check to pass.
	HashKey string

	// Timeout bounds every request. Zero means 15 seconds.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client  *utils.HTTPClient
	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: client, hashKey: cfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	var auth models.AuthResponse

	request, err := h.signedRequest(h.client.R().SetContext(ctx), req)
	if err != nil {
		return models.User{}, err
	}

	resp, err := request.
		SetResult(&auth).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// server-side user record.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	var auth models.AuthResponse

	request, err := h.signedRequest(h.client.R().SetContext(ctx), req)
	if err != nil {
		return models.User{}, err
	}

	resp, err := request.
		SetResult(&auth).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

// Me implements [ServerAdapter]. It GETs the profile of the authenticated
// user from GET /api/user/me. Requires a valid bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateNote implements [ServerAdapter]. It POSTs the note payload to
// POST /api/notes/ with a transport integrity hash and decodes the created
// note from the response. Requires a valid bearer token.
func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.NoteCreateRequest) (models.Note, error) {
	var note models.Note

	request, err := h.signedRequest(h.authedRequest(ctx), req)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := request.
		SetResult(&note).
		Post("/api/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// GetNote implements [ServerAdapter]. It GETs a single note from
// GET /api/notes/{noteID}. Requires a valid bearer token.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&note).
		SetPathParam("noteID", noteID).
		Get("/api/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes implements [ServerAdapter]. It GETs GET /api/notes/ with the
// filter encoded as query parameters and decodes the response envelope.
// Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteListFilter) ([]models.Note, error) {
	request := h.authedRequest(ctx)

	if filter.Tag != "" {
		request.SetQueryParam("tag", filter.Tag)
	}
	if filter.Archived != nil {
		request.SetQueryParam("archived", strconv.FormatBool(*filter.Archived))
	}
	if filter.Limit > 0 {
		request.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		request.SetQueryParam("offset", strconv.Itoa(filter.Offset))
	}

	resp, err := request.Get("/api/notes/")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListNotesResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return list.Notes, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs a partial update to
// PUT /api/notes/{noteID} with a transport integrity hash. Returns
// [ErrConflict] (wrapped) on HTTP 409. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, req models.NoteUpdateRequest) (models.Note, error) {
	var note models.Note

	request, err := h.signedRequest(h.authedRequest(ctx), req)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := request.
		SetResult(&note).
		SetPathParam("noteID", noteID).
		Put("/api/notes/{noteID}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/notes/{noteID}?version=N. Returns [ErrConflict] (wrapped) on
// HTTP 409. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string, version int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("noteID", noteID).
		SetQueryParam("version", strconv.FormatInt(version, 10)).
		Delete("/api/notes/{noteID}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]. It GETs the plain-text build version
// from GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest marshals body once, attaches it as the raw request payload
// and, when a hash key is configured, signs those exact bytes so the header
// matches what the server reads off the wire.
func (h *httpServerAdapter) signedRequest(req *resty.Request, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashString(string(payload), h.hashKey))
	}

	return req, nil
}
