package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"consultly/config"
	"consultly/models"
	"consultly/utils"
)

// tokenExpiryMargin is subtracted from the provider-reported lifetime so we
// refresh before the token actually dies mid-request.
const tokenExpiryMargin = 60 * time.Second

// Client defines the provider meeting operations the rest of the system
// depends on.
type Client interface {
	CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int, autoRecord bool) (*Meeting, error)
	GetMeeting(ctx context.Context, meetingID string) (*Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID string, start time.Time, durationMinutes int) error
	DeleteMeeting(ctx context.Context, meetingID string) error
	GetMeetingRecordings(ctx context.Context, meetingID string) ([]models.ZoomRecordingFile, error)
}

// DefaultClient talks to the Zoom REST API using server-to-server OAuth.
// The access token is cached on the client and reused until shortly before
// expiry; a 401 clears the cache and the request is retried once with a
// fresh token.
type DefaultClient struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	BaseURL      string
	OAuthURL     string
	Timezone     string
	HTTPClient   *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	// now is swappable in tests.
	now func() time.Time
}

// NewClient builds a DefaultClient from the application configuration.
func NewClient() *DefaultClient {
	cfg := config.AppConfig
	return &DefaultClient{
		AccountID:    cfg.ZoomAccountID,
		ClientID:     cfg.ZoomClientID,
		ClientSecret: cfg.ZoomClientSecret,
		BaseURL:      cfg.ZoomBaseURL,
		OAuthURL:     cfg.ZoomOAuthURL,
		Timezone:     cfg.ZoomTimezone,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *DefaultClient) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *DefaultClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// getAccessToken returns the cached token when still valid, otherwise fetches
// a new one. The lock only guards the cache; the token request itself runs
// outside it, so concurrent callers may race to refresh. Last write wins and
// both tokens are valid.
func (c *DefaultClient) getAccessToken(ctx context.Context) (string, error) {
	if c.AccountID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return "", &utils.AuthConfigError{Message: "zoom credentials are not configured"}
	}

	c.mu.Lock()
	if c.token != "" && c.clock().Before(c.tokenExpiry) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", c.AccountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.OAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("zoom token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", newProviderError(resp.StatusCode, body)
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode zoom token response: %w", err)
	}

	c.mu.Lock()
	c.token = tr.AccessToken
	c.tokenExpiry = c.clock().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin)
	c.mu.Unlock()
	return tr.AccessToken, nil
}

func (c *DefaultClient) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// request performs an authenticated call against the Zoom REST API and
// decodes the response into out when given. A 401 invalidates the cached
// token and retries exactly once.
func (c *DefaultClient) request(ctx context.Context, method, path string, payload, out interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal zoom request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		token, err := c.getAccessToken(ctx)
		if err != nil {
			return err
		}

		var reader io.Reader
		if body != nil {
			reader = strings.NewReader(string(body))
		}
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
		if err != nil {
			return fmt.Errorf("failed to create zoom request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient().Do(req)
		if err != nil {
			return fmt.Errorf("zoom request %s %s failed: %w", method, path, err)
		}

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			resp.Body.Close()
			c.invalidateToken()
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			respBody, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return newProviderError(resp.StatusCode, respBody)
		}

		if out != nil && resp.StatusCode != http.StatusNoContent {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				resp.Body.Close()
				return fmt.Errorf("failed to decode zoom response: %w", err)
			}
		}
		resp.Body.Close()
		return nil
	}
}

// newProviderError maps a non-2xx provider response onto the error taxonomy,
// preferring the structured {code, message} body Zoom returns.
func newProviderError(status int, body []byte) error {
	var er struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		msg = er.Message
	}
	return &utils.ProviderAPIError{StatusCode: status, Message: msg}
}
