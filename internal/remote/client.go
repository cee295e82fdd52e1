// Package remote sincroniza el diario con una tabla baby_events expuesta por
// HTTP al estilo PostgREST (POST de filas, GET con select/order).
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"baby-journal/internal/codec/relational"
	"baby-journal/internal/platform/httpclient"
)

// Config se pasa explícitamente; el paquete no lee variables de entorno.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

func (c Config) Configured() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// Client habla el contrato HTTP de la tabla remota.
type Client struct {
	endpoint string
	token    string
	http     *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	u, err := url.ParseRequestURI(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid endpoint %q", ErrNotConfigured, endpoint)
	}
	return &Client{
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.Token),
		http:     httpclient.New(cfg.Timeout),
	}, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{}
	if c.token != "" {
		h["Authorization"] = "Bearer " + c.token
	}
	return h
}

// InsertRows envía todas las filas en un solo POST y pide al servidor que
// fusione duplicados.
func (c *Client) InsertRows(ctx context.Context, rows []relational.Row) error {
	h := c.headers()
	h["Prefer"] = "resolution=merge-duplicates"
	if err := c.http.DoJSON(ctx, http.MethodPost, c.endpoint, h, rows, nil); err != nil {
		return classify("push", err)
	}
	return nil
}

// FetchRows lee todas las filas, de la más reciente a la más antigua.
func (c *Client) FetchRows(ctx context.Context) ([]relational.Row, error) {
	var rows []relational.Row
	if err := c.http.DoJSON(ctx, http.MethodGet, c.selectURL(), c.headers(), nil, &rows); err != nil {
		return nil, classify("pull", err)
	}
	return rows, nil
}

// Ping hace un HEAD al endpoint. 2xx y 405 (HEAD no permitido) cuentan como
// alcanzable; cualquier otro status es un *StatusError.
func (c *Client) Ping(ctx context.Context) (int, error) {
	status, err := c.http.Head(ctx, c.endpoint, c.headers())
	if err != nil {
		return 0, classify("check", err)
	}
	if (status >= 200 && status < 300) || status == http.StatusMethodNotAllowed {
		return status, nil
	}
	return status, &StatusError{Op: "check", StatusCode: status}
}

func (c *Client) selectURL() string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + "select=*&order=event_datetime.desc"
}

// IsNetwork informa si err es un fallo de conectividad.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
