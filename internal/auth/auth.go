// Package auth exchanges configured credentials for an API session.
//
// Two flows are supported: an OAuth client-credentials token exchange, and
// the classic username/password/security-token SOAP login. Both are
// fatal-on-failure; the caller exits instead of retrying.
package auth

import (
	"fmt"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/config"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/input"
)

// Authenticate produces a session using whichever flow the configuration
// provides, preferring client credentials when fully configured. The
// password flow collects the password and security token through prompter
// without echoing them.
func Authenticate(cfg *config.Config, prompter input.Prompter) (api.Session, error) {
	if cfg.HasClientCredentials() {
		return ClientCredentials(cfg)
	}

	if cfg.HasPassword() {
		password, err := prompter.Secret("Enter Salesforce password: ")
		if err != nil {
			return api.Session{}, fmt.Errorf("failed to read password: %w", err)
		}
		token, err := prompter.Secret("Enter security token: ")
		if err != nil {
			return api.Session{}, fmt.Errorf("failed to read security token: %w", err)
		}
		return PasswordLogin(cfg, password, token)
	}

	return api.Session{}, fmt.Errorf("no authentication flow configured")
}
