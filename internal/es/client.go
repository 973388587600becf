package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v7"

	"github.com/quarryapp/quarry/internal/domain"
)

// Client executes request specs against one cluster. Typed panel actions
// and raw console calls alike go through Do as a plain HTTP pass-through;
// the cluster's JSON answer is returned verbatim.
type Client struct {
	es      *elasticsearch.Client
	conn    domain.Connection
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient builds a client for the given connection settings. The scheme
// follows UseHTTPS, basic auth is attached only when AuthEnabled, and
// certificate verification is skipped when VerifySSL is off.
func NewClient(conn domain.Connection, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if err := conn.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses:    []string{conn.BaseURL()},
		DisableRetry: true, // one request per user action, never retried
	}
	if conn.AuthEnabled {
		cfg.Username = conn.Username
		cfg.Password = conn.Password
	}
	if conn.UseHTTPS && !conn.VerifySSL {
		cfg.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		logger.Warn("TLS certificate verification disabled",
			slog.String("host", conn.Host))
	}

	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	return &Client{
		es:      esClient,
		conn:    conn,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Connection returns the settings this client was built from.
func (c *Client) Connection() domain.Connection {
	return c.conn
}

// Do executes a request spec and returns the cluster's response. HTTP error
// statuses (4xx/5xx) are ordinary results whose bodies are returned as-is
// for rendering; only transport failures produce an error.
func (c *Client) Do(ctx context.Context, spec domain.RequestSpec) (domain.Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if spec.HasBody() {
		bodyReader = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.Path, bodyReader)
	if err != nil {
		return domain.Result{}, fmt.Errorf("build request: %w", err)
	}
	if spec.HasBody() {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range spec.Header {
		req.Header.Set(k, v)
	}

	c.logger.Debug("executing request",
		slog.String("method", spec.Method),
		slog.String("path", spec.Path),
		slog.Bool("has_body", spec.HasBody()))

	start := time.Now()
	res, err := c.es.Perform(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error("request failed",
			slog.String("method", spec.Method),
			slog.String("path", spec.Path),
			slog.Any("error", err))
		return domain.Result{Duration: duration}, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.Result{Duration: duration}, fmt.Errorf("read response body: %w", err)
	}

	// Empty bodies (204, HEAD) get a synthesized acknowledgement so the
	// renderer always has a document to show.
	if len(bytes.TrimSpace(data)) == 0 {
		data, _ = json.Marshal(map[string]any{
			"acknowledged": true,
			"status":       res.StatusCode,
			"operation":    spec.Method,
		})
	}

	c.logger.Info("request completed",
		slog.String("method", spec.Method),
		slog.String("path", spec.Path),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", duration))

	return domain.Result{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Body:       data,
		Duration:   duration,
	}, nil
}

// ClusterInfo is the subset of the root-info response shown in the status bar.
type ClusterInfo struct {
	ClusterName string `json:"cluster_name"`
	Version     struct {
		Number string `json:"number"`
	} `json:"version"`
}

// ParseClusterInfo extracts the cluster name and version from a root-info
// response body. Unknown shapes yield zero values, not errors.
func ParseClusterInfo(body []byte) ClusterInfo {
	var info ClusterInfo
	_ = json.Unmarshal(body, &info)
	return info
}
