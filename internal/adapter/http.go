package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/aulrahman/storyshare/internal/config"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/models"
)

type httpStoryAPI struct {
	client *resty.Client
	logger *logger.Logger

	// token is read by background sync goroutines while auth commands
	// replace it, so access goes through mu.
	mu    sync.RWMutex
	token string
}

// NewHTTPStoryAPI constructs an HTTP/REST implementation of [StoryAPI].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPStoryAPI(adapterCfg config.ClientAdapter, log *logger.Logger) (StoryAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpStoryAPI{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [StoryAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpStoryAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [StoryAPI].
func (h *httpStoryAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [StoryAPI]. It POSTs the credentials to POST /register
// and returns the decoded response envelope.
func (h *httpStoryAPI) Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIResponse{}, err
	}

	return decodeEnvelope(resp.Body())
}

// Login implements [StoryAPI]. It POSTs the credentials to POST /login and,
// on success, stores the returned bearer token via SetToken.
func (h *httpStoryAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(loginResp.LoginResult.Token)
	return loginResp.LoginResult, nil
}

// ListStories implements [StoryAPI]. It GETs /stories with bearer auth and
// returns the decoded story list plus the raw payload, so callers can feed
// the response cache without re-encoding.
func (h *httpStoryAPI) ListStories(ctx context.Context) ([]models.Story, []byte, error) {
	resp, err := h.authedRequest(ctx).Get("/stories")
	if err != nil {
		return nil, nil, fmt.Errorf("list stories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	var listResp models.StoryListResponse
	if err = json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, nil, fmt.Errorf("decode story list response: %w", err)
	}

	return listResp.ListStory, resp.Body(), nil
}

// CreateStory implements [StoryAPI]. It POSTs the story as a multipart
// payload to POST /stories: a description field, the photo file, and optional
// lat/lon fields. Requires a valid bearer token.
func (h *httpStoryAPI) CreateStory(ctx context.Context, story models.NewStory) (models.APIResponse, error) {
	photoName := story.PhotoName
	if photoName == "" {
		photoName = "photo"
	}

	req := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{"description": story.Description}).
		SetMultipartField("photo", photoName, http.DetectContentType(story.Photo), bytes.NewReader(story.Photo))

	if story.Lat != nil {
		req.SetMultipartFormData(map[string]string{"lat": strconv.FormatFloat(*story.Lat, 'f', -1, 64)})
	}
	if story.Lon != nil {
		req.SetMultipartFormData(map[string]string{"lon": strconv.FormatFloat(*story.Lon, 'f', -1, 64)})
	}

	resp, err := req.Post("/stories")
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("create story request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIResponse{}, err
	}

	return decodeEnvelope(resp.Body())
}

// SubscribePush implements [StoryAPI]. It POSTs the subscription descriptor
// verbatim to POST /notifications/subscribe. Requires a valid bearer token.
func (h *httpStoryAPI) SubscribePush(ctx context.Context, sub models.PushSubscription) (models.APIResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post("/notifications/subscribe")
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("subscribe push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIResponse{}, err
	}

	return decodeEnvelope(resp.Body())
}

// UnsubscribePush implements [StoryAPI]. It sends a DELETE request to
// /notifications/unsubscribe for the given endpoint. Requires a valid bearer
// token.
func (h *httpStoryAPI) UnsubscribePush(ctx context.Context, endpoint string) (models.APIResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"endpoint": endpoint}).
		Delete("/notifications/unsubscribe")
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("unsubscribe push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIResponse{}, err
	}

	return decodeEnvelope(resp.Body())
}

func (h *httpStoryAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeEnvelope(body []byte) (models.APIResponse, error) {
	var envelope models.APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.APIResponse{}, fmt.Errorf("decode response envelope: %w", err)
	}
	return envelope, nil
}
