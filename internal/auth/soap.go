package auth

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/config"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
)

const loginEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:urn="urn:partner.soap.sforce.com">
  <soapenv:Body>
    <urn:login>
      <urn:username>%s</urn:username>
      <urn:password>%s</urn:password>
    </urn:login>
  </soapenv:Body>
</soapenv:Envelope>`

// loginResponse covers both the success and fault shapes of the SOAP login
// reply; xml.Unmarshal matches local element names across namespaces.
type loginResponse struct {
	Body struct {
		Fault *struct {
			FaultString string `xml:"faultstring"`
		} `xml:"Fault"`
		LoginResponse *struct {
			Result struct {
				SessionID string `xml:"sessionId"`
				ServerURL string `xml:"serverUrl"`
			} `xml:"result"`
		} `xml:"loginResponse"`
	} `xml:"Body"`
}

// PasswordLogin performs the SOAP login() handshake for the
// username/password flow. The security token is appended to the password,
// per the platform's login contract. The instance URL for subsequent REST
// calls is derived from the serverUrl in the login result.
func PasswordLogin(cfg *config.Config, password, securityToken string) (api.Session, error) {
	envelope := fmt.Sprintf(loginEnvelope,
		xmlEscape(cfg.Username),
		xmlEscape(password+securityToken),
	)

	loginURL := fmt.Sprintf("%s/services/Soap/u/%s",
		strings.TrimRight(cfg.LoginURL, "/"), core.APIVersion)

	req, err := http.NewRequest(http.MethodPost, loginURL, strings.NewReader(envelope))
	if err != nil {
		return api.Session{}, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	req.Header.Set("SOAPAction", "login")

	httpClient := &http.Client{Timeout: cfg.Timeout()}
	resp, err := httpClient.Do(req)
	if err != nil {
		return api.Session{}, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.Session{}, fmt.Errorf("failed to read login response: %w", err)
	}

	var parsed loginResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return api.Session{}, fmt.Errorf("failed to parse login response: %w", err)
	}

	if parsed.Body.Fault != nil {
		return api.Session{}, fmt.Errorf("login failed: %s", parsed.Body.Fault.FaultString)
	}
	if parsed.Body.LoginResponse == nil || parsed.Body.LoginResponse.Result.SessionID == "" {
		return api.Session{}, fmt.Errorf("login failed: HTTP %d", resp.StatusCode)
	}

	result := parsed.Body.LoginResponse.Result
	serverURL, err := url.Parse(result.ServerURL)
	if err != nil {
		return api.Session{}, fmt.Errorf("login returned invalid serverUrl %q: %w", result.ServerURL, err)
	}

	return api.Session{
		AccessToken: result.SessionID,
		InstanceURL: serverURL.Scheme + "://" + serverURL.Host,
	}, nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on writer errors; bytes.Buffer cannot fail.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
