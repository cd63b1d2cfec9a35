// Package core provides shared constants and stderr helpers for the Salesforce CLI.
package core

// API configuration
const (
	APIVersion      = "62.0"
	DefaultLoginURL = "https://login.salesforce.com"

	// MetadataKey is the reserved field Salesforce attaches to every returned
	// record; it is excluded from display and export.
	MetadataKey = "attributes"
)

// Environment variables
const (
	EnvUsername       = "SF_USERNAME"
	EnvInstanceURL    = "SF_INSTANCE_URL"
	EnvConsumerKey    = "SF_CONSUMER_KEY"
	EnvConsumerSecret = "SF_CONSUMER_SECRET"
	EnvLoginURL       = "SF_LOGIN_URL"
	EnvTimeout        = "SF_TIMEOUT"
)

// Defaults
const (
	DefaultQueryLimit  = 10
	DefaultTimeoutSecs = 30
)

// Version is the current CLI version.
const Version = "1.0.0"
