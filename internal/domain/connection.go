package domain

import (
	"fmt"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// Connection holds the cluster connection settings edited in the
// connection panel and persisted as part of the session.
type Connection struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	UseHTTPS  bool   `json:"use_https"`
	VerifySSL bool   `json:"verify_ssl"`
	Index     string `json:"index,omitempty"`

	// Basic authentication. The password is persisted in cleartext with
	// the rest of the session; see the storage package docs.
	AuthEnabled bool   `json:"auth_enabled"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
}

// DefaultConnection returns the connection settings used before any
// session has been saved.
func DefaultConnection() Connection {
	return Connection{
		Host:      "localhost",
		Port:      9200,
		VerifySSL: true,
		Index:     "my-index",
	}
}

// Scheme returns "https" when UseHTTPS is set, "http" otherwise.
func (c Connection) Scheme() string {
	if c.UseHTTPS {
		return "https"
	}
	return "http"
}

// BaseURL returns the fully-qualified cluster URL, e.g. "http://localhost:9200".
func (c Connection) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Host, c.Port)
}

// Validate checks the fields required before any request can be built.
func (c Connection) Validate() error {
	if c.Host == "" {
		return apperrors.ValidationError{Field: "host", Message: "host must not be empty"}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return apperrors.ValidationError{Field: "port", Message: "port must be between 1 and 65535"}
	}
	if c.AuthEnabled && c.Username == "" {
		return apperrors.ValidationError{Field: "username", Message: "username is required when authentication is enabled"}
	}
	return nil
}
