// Package gateway talks to the proforma invoice REST endpoint. Client
// satisfies invoice.Gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	ierr "github.com/satheeshds/proforma/errors"
	"github.com/satheeshds/proforma/models"
)

// DefaultEndpoint is where a locally started server exposes the record.
const DefaultEndpoint = "http://localhost:8080/api/v1/proformaInvoice"

// envelope mirrors the server response body.
type envelope struct {
	Data  *models.Invoice `json:"data"`
	Error string          `json:"error,omitempty"`
}

// Error is returned for non-2xx responses.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

// Client fetches and overwrites the invoice record over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates a client for endpoint. A zero timeout means no timeout.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch GETs the whole record.
func (c *Client) Fetch(ctx context.Context) (*models.Invoice, error) {
	return c.send(ctx, http.MethodGet, nil)
}

// Persist PUTs the whole record and returns what the server stored.
func (c *Client) Persist(ctx context.Context, doc *models.Invoice) (*models.Invoice, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to encode invoice").
			Mark(ierr.ErrSystem)
	}
	return c.send(ctx, http.MethodPut, body)
}

func (c *Client) send(ctx context.Context, method string, body []byte) (*models.Invoice, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, reader)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the gateway endpoint").
			Mark(ierr.ErrHTTPClient)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("invoice server unreachable at %s", c.endpoint).
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to read invoice response").
			Mark(ierr.ErrHTTPClient)
	}

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode >= 400 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, ierr.WithError(&Error{StatusCode: resp.StatusCode, Message: msg}).
			WithHint(msg).
			WithReportableDetails(map[string]any{"method": method, "status": resp.StatusCode}).
			Mark(ierr.ErrHTTPClient)
	}
	if decodeErr != nil {
		return nil, ierr.WithError(decodeErr).
			WithHint("invoice response is not valid JSON").
			Mark(ierr.ErrHTTPClient)
	}
	if env.Data == nil {
		env.Data = &models.Invoice{}
	}
	return env.Data, nil
}
