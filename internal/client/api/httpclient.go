package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/common"
)

// HTTPClient implements Client against the service's HTTP JSON API.
//
// The bearer token, once set, rides on every request. A 401 response to a
// request that carried the token fires the registered unauthorized callback
// exactly once per response; a 401 to an anonymous request (e.g. a failed
// login) is an ordinary RequestError so the caller can show the detail.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	token          string
	onUnauthorized func()
}

// NewHTTPClient builds a client for the given base URL (e.g.
// "http://127.0.0.1:8000/api"). Timeout bounds every request end to end;
// a timeout surfaces as common.ErrorUnavailable like any other transport
// failure.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// SetToken attaches the bearer credential to all subsequent requests.
func (c *HTTPClient) SetToken(token string) { c.token = token }

// ClearToken removes the bearer credential from all subsequent requests.
func (c *HTTPClient) ClearToken() { c.token = "" }

// OnUnauthorized registers the single subscriber for token rejections.
func (c *HTTPClient) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// doJSON performs one API call: marshal body (if any), attach headers and
// token, execute, and decode the response into out (if non-nil). Non-2xx
// responses are normalized into sentinel or RequestError values.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	hadToken := c.token != ""
	if hadToken {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && hadToken {
		// The stored credential is no longer trustworthy anywhere; notify
		// the session layer before returning.
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.ErrorUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeDetail pulls the {"detail": "..."} message out of an error body.
// Anything unparseable yields "".
func decodeDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}

func (c *HTTPClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}{Email: email, Password: password, Name: name}

	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Verify(ctx context.Context, req *models.VerificationRequest) (*models.VerificationResult, error) {
	body := struct {
		Content string  `json:"content"`
		URL     *string `json:"url"`
	}{Content: req.Content, URL: req.URL}

	var result models.VerificationResult
	if err := c.doJSON(ctx, http.MethodPost, "/verify", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) Trending(ctx context.Context) ([]models.TrendingEntry, error) {
	var entries []models.TrendingEntry
	if err := c.doJSON(ctx, http.MethodGet, "/trending", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) News(ctx context.Context, category string) (*NewsResponse, error) {
	path := "/news"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var resp NewsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ChatTurn(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	req := struct {
		Message string               `json:"message"`
		History []models.ChatMessage `json:"history"`
	}{Message: message, History: history}
	if req.History == nil {
		req.History = []models.ChatMessage{}
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/chatbot", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
