package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
)

// APIError is returned when Salesforce answers with a non-2xx status.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("API error (HTTP %d, %s): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client is the HTTP gateway for the Salesforce REST data API.
type Client struct {
	session    Session
	httpClient *http.Client
	refresh    func() (Session, error)
	verbose    bool
}

// NewClient creates a gateway bound to an authenticated session.
func NewClient(session Session, timeout time.Duration, verbose bool) *Client {
	return &Client{
		session: session,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		verbose: verbose,
	}
}

// SetRefresh installs a session refresher invoked at most once per request
// when the platform answers HTTP 401 (expired access token).
func (c *Client) SetRefresh(fn func() (Session, error)) {
	c.refresh = fn
}

// log writes a message to stderr if verbose mode is enabled.
func (c *Client) log(msg string) {
	core.Eprint(fmt.Sprintf("[API] %s", msg), c.verbose)
}

// Do issues an authenticated REST call and decodes the JSON payload.
// A 204 response yields an empty map; any status >= 400 yields an *APIError.
func (c *Client) Do(method, endpoint string, body interface{}) (map[string]interface{}, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		urlStr := c.buildURL(endpoint)
		c.log(fmt.Sprintf("%s %s", method, urlStr))

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequest(method, urlStr, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized && c.refresh != nil && attempt == 0 {
			c.log("HTTP 401; refreshing session and retrying")
			session, err := c.refresh()
			if err != nil {
				return nil, fmt.Errorf("session refresh failed: %w", err)
			}
			c.session = session
			continue
		}

		if resp.StatusCode == http.StatusNoContent {
			c.log(fmt.Sprintf("Response: HTTP %d (no content)", resp.StatusCode))
			return map[string]interface{}{}, nil
		}

		if resp.StatusCode >= 400 {
			return nil, parseAPIError(resp.StatusCode, respBody)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w", err)
		}

		c.log(fmt.Sprintf("Response: HTTP %d, %d bytes", resp.StatusCode, len(respBody)))
		return result, nil
	}
}

// buildURL resolves an endpoint against the session's instance. Continuation
// paths returned by the platform (nextRecordsUrl) already carry the full
// /services/data prefix and are used as-is.
func (c *Client) buildURL(endpoint string) string {
	base := strings.TrimRight(c.session.InstanceURL, "/")
	if strings.HasPrefix(endpoint, "/services/") {
		return base + endpoint
	}
	return fmt.Sprintf("%s/services/data/v%s%s", base, core.APIVersion, endpoint)
}

// parseAPIError maps a Salesforce error body to an *APIError. The REST API
// wraps errors in a one-element array; the OAuth endpoints use a flat object.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var asList []struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &asList); err == nil && len(asList) > 0 {
		apiErr.Message = asList[0].Message
		apiErr.ErrorCode = asList[0].ErrorCode
		return apiErr
	}

	var asObject struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &asObject); err == nil && asObject.Description != "" {
		apiErr.Message = asObject.Description
		apiErr.ErrorCode = asObject.Error
	}

	return apiErr
}
