package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/config"
)

// ClientCredentials performs the OAuth client-credentials token exchange
// against the configured instance and returns the resulting session.
func ClientCredentials(cfg *config.Config) (api.Session, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", cfg.ConsumerKey)
	form.Set("client_secret", cfg.ConsumerSecret)

	tokenURL := strings.TrimRight(cfg.InstanceURL, "/") + "/services/oauth2/token"
	httpClient := &http.Client{Timeout: cfg.Timeout()}

	resp, err := httpClient.PostForm(tokenURL, form)
	if err != nil {
		return api.Session{}, fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.Session{}, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var oauthErr struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.Description != "" {
			return api.Session{}, fmt.Errorf("token exchange failed: %s", oauthErr.Description)
		}
		return api.Session{}, fmt.Errorf("token exchange failed: HTTP %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		InstanceURL string `json:"instance_url"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return api.Session{}, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return api.Session{}, fmt.Errorf("token response missing access_token")
	}

	instance := token.InstanceURL
	if instance == "" {
		instance = cfg.InstanceURL
	}

	return api.Session{
		AccessToken: token.AccessToken,
		InstanceURL: strings.TrimRight(instance, "/"),
	}, nil
}
