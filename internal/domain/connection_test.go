package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

func TestConnectionScheme(t *testing.T) {
	assert.Equal(t, "http", Connection{}.Scheme())
	assert.Equal(t, "https", Connection{UseHTTPS: true}.Scheme())
}

func TestConnectionBaseURL(t *testing.T) {
	conn := Connection{Host: "localhost", Port: 9200}
	assert.Equal(t, "http://localhost:9200", conn.BaseURL())

	conn.UseHTTPS = true
	conn.Host = "es.example.com"
	conn.Port = 9243
	assert.Equal(t, "https://es.example.com:9243", conn.BaseURL())
}

func TestConnectionValidate(t *testing.T) {
	valid := Connection{Host: "localhost", Port: 9200}

	tests := []struct {
		name   string
		modify func(*Connection)
		field  string
	}{
		{"valid", func(*Connection) {}, ""},
		{"empty host", func(c *Connection) { c.Host = "" }, "host"},
		{"zero port", func(c *Connection) { c.Port = 0 }, "port"},
		{"negative port", func(c *Connection) { c.Port = -1 }, "port"},
		{"port too large", func(c *Connection) { c.Port = 70000 }, "port"},
		{"auth without username", func(c *Connection) { c.AuthEnabled = true }, "username"},
		{"auth with username", func(c *Connection) {
			c.AuthEnabled = true
			c.Username = "elastic"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := valid
			tt.modify(&conn)

			err := conn.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDefaultConnection(t *testing.T) {
	conn := DefaultConnection()
	assert.NoError(t, conn.Validate())
	assert.Equal(t, "http://localhost:9200", conn.BaseURL())
	assert.True(t, conn.VerifySSL)
}
