package remote

import (
	"errors"
	"fmt"
	"net/http"

	"baby-journal/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("remote endpoint not configured")

// NetworkError: la petición no obtuvo respuesta (servidor caído, DNS,
// CORS/proxy, timeout). Se resuelve revisando la conectividad o la URL.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError: el servidor respondió con un status no-2xx. Suele indicar un
// problema de configuración (token, tabla, permisos).
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := e.Body
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: remote returned %d: %s", e.Op, e.StatusCode, msg)
}

// classify traduce los errores de httpclient a la taxonomía del paquete.
func classify(op string, err error) error {
	var te *httpclient.TransportError
	if errors.As(err, &te) {
		return &NetworkError{Op: op, Err: te.Err}
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return &StatusError{Op: op, StatusCode: he.StatusCode, Body: he.Body}
	}
	return fmt.Errorf("%s: %w", op, err)
}
