package es

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryapp/quarry/internal/domain"
	apperrors "github.com/quarryapp/quarry/internal/errors"
	"github.com/quarryapp/quarry/internal/logging"
)

// connectionFor converts an httptest server URL into connection settings.
func connectionFor(t *testing.T, server *httptest.Server) domain.Connection {
	t.Helper()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return domain.Connection{Host: u.Hostname(), Port: port}
}

func TestClient_PassThrough(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"took":1,"hits":{"total":{"value":0}}}`))
	}))
	defer server.Close()

	client, err := NewClient(connectionFor(t, server), 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := SearchRequest("logs", `{"query":{"match_all":{}}}`)
	require.NoError(t, err)

	result, err := client.Do(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/logs/_search", gotPath)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"query":{"match_all":{}}}`, string(gotBody))

	assert.Equal(t, 200, result.StatusCode)
	assert.JSONEq(t, `{"took":1,"hits":{"total":{"value":0}}}`, string(result.Body))
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestClient_NoBodyMeansNoContentType(t *testing.T) {
	var gotContentType string
	var gotLength int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(connectionFor(t, server), 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := RawRequest("DELETE", "/logs/1", "")
	require.NoError(t, err)

	_, err = client.Do(context.Background(), spec)
	require.NoError(t, err)

	assert.Empty(t, gotContentType)
	assert.LessOrEqual(t, gotLength, int64(0))
}

func TestClient_BasicAuth(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	conn := connectionFor(t, server)
	conn.AuthEnabled = true
	conn.Username = "elastic"
	conn.Password = "changeme"

	client, err := NewClient(conn, 0, logging.NewNopLogger())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), InfoRequest())
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("elastic:changeme"))
	assert.Equal(t, want, gotAuth)
}

func TestClient_NoAuthHeaderWhenDisabled(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	conn := connectionFor(t, server)
	conn.Username = "ignored"
	conn.Password = "ignored"

	client, err := NewClient(conn, 0, logging.NewNopLogger())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), InfoRequest())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_HTTPErrorIsAnOrdinaryResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"index_not_found_exception"},"status":404}`))
	}))
	defer server.Close()

	client, err := NewClient(connectionFor(t, server), 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := DocumentGetRequest("missing", "1")
	require.NoError(t, err)

	// The error payload is rendered as-is; no Go error for 4xx/5xx.
	result, err := client.Do(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 404, result.StatusCode)
	assert.True(t, result.IsError())
	assert.Contains(t, string(result.Body), "index_not_found_exception")
}

func TestClient_EmptyBodySynthesizesAck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient(connectionFor(t, server), 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := RawRequest("DELETE", "/logs", "")
	require.NoError(t, err)

	result, err := client.Do(context.Background(), spec)
	require.NoError(t, err)

	var ack map[string]any
	require.NoError(t, json.Unmarshal(result.Body, &ack))
	assert.Equal(t, true, ack["acknowledged"])
	assert.Equal(t, float64(204), ack["status"])
	assert.Equal(t, "DELETE", ack["operation"])
}

func TestClient_HTTPSSkipsVerificationWhenDisabled(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cluster_name":"tls-cluster"}`))
	}))
	defer server.Close()

	conn := connectionFor(t, server)
	conn.UseHTTPS = true
	conn.VerifySSL = false

	client, err := NewClient(conn, 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := RawRequest("GET", "/", "")
	require.NoError(t, err)

	result, err := client.Do(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 200, result.StatusCode)
	assert.JSONEq(t, `{"cluster_name":"tls-cluster"}`, string(result.Body))
}

func TestClient_HTTPSRejectsUnknownCertificate(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	conn := connectionFor(t, server)
	conn.UseHTTPS = true
	conn.VerifySSL = true

	client, err := NewClient(conn, 0, logging.NewNopLogger())
	require.NoError(t, err)

	spec, err := RawRequest("GET", "/", "")
	require.NoError(t, err)

	_, err = client.Do(context.Background(), spec)
	require.Error(t, err)
}

func TestClient_TransportError(t *testing.T) {
	// A server that is immediately closed guarantees a refused connection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	conn := connectionFor(t, server)
	server.Close()

	client, err := NewClient(conn, 0, logging.NewNopLogger())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), InfoRequest())
	require.Error(t, err)
}

func TestNewClient_ValidatesConnection(t *testing.T) {
	var vErr apperrors.ValidationError

	_, err := NewClient(domain.Connection{Port: 9200}, 0, logging.NewNopLogger())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "host", vErr.Field)

	_, err = NewClient(domain.Connection{Host: "localhost"}, 0, logging.NewNopLogger())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "port", vErr.Field)
}

func TestParseClusterInfo(t *testing.T) {
	info := ParseClusterInfo([]byte(`{"cluster_name":"docker-cluster","version":{"number":"7.17.0"}}`))
	assert.Equal(t, "docker-cluster", info.ClusterName)
	assert.Equal(t, "7.17.0", info.Version.Number)

	// Unknown shapes yield zero values.
	info = ParseClusterInfo([]byte(`"not an object"`))
	assert.Empty(t, info.ClusterName)
}

func TestManager_Lifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cluster_name":"test-cluster","version":{"number":"7.17.0"}}`))
	}))
	defer server.Close()

	var states []ConnectionState
	manager := NewManager(logging.NewNopLogger())
	manager.SetStateCallback(func(state ConnectionState, message string) {
		states = append(states, state)
	})

	assert.Equal(t, StateDisconnected, manager.State())

	info, err := manager.Connect(context.Background(), connectionFor(t, server), 0)
	require.NoError(t, err)
	assert.Equal(t, "test-cluster", info.ClusterName)
	assert.Equal(t, StateConnected, manager.State())
	assert.Equal(t, []ConnectionState{StateConnecting, StateConnected}, states)

	result, err := manager.Do(context.Background(), InfoRequest())
	require.NoError(t, err)
	assert.Equal(t, 200, result.StatusCode)

	manager.Disconnect()
	assert.Equal(t, StateDisconnected, manager.State())

	_, err = manager.Do(context.Background(), InfoRequest())
	assert.ErrorIs(t, err, apperrors.ErrNotConnected)
}

func TestManager_ConnectAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	manager := NewManager(logging.NewNopLogger())
	_, err := manager.Connect(context.Background(), connectionFor(t, server), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConnectionFailed)
	assert.Equal(t, StateError, manager.State())
	assert.Nil(t, manager.Client())
}

func TestConnectionStateString(t *testing.T) {
	assert.Equal(t, "Disconnected", StateDisconnected.String())
	assert.Equal(t, "Connecting", StateConnecting.String())
	assert.Equal(t, "Connected", StateConnected.String())
	assert.Equal(t, "Error", StateError.String())
}
