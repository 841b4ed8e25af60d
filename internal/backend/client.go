package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read. The API serves
	// small JSON documents; anything larger is not worth buffering.
	maxBodySize = 4 << 20
)

// Client talks to the remote portfolio API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a new API client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// response is the raw outcome of an API call before normalization.
type response struct {
	status int
	body   []byte
	header http.Header
}

// do sends one request to the API. A non-empty token is attached both as a
// bearer header and a token cookie, covering both deployment variants.
// Transport-level failures map to ErrNetworkUnavailable; HTTP status handling
// is left to the caller.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*response, error) {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrNetworkUnavailable, err.Error())
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(ErrNetworkUnavailable, err.Error())
	}

	return &response{
		status: resp.StatusCode,
		body:   data,
		header: resp.Header,
	}, nil
}

// checkStatus maps common error statuses to the client error taxonomy.
// A nil return means the response is a 2xx and carries a payload.
func checkStatus(resp *response) error {
	switch {
	case resp.status == http.StatusUnauthorized:
		return errors.Wrap(ErrUnauthorized, serverMessage(resp.body))
	case resp.status < 200 || resp.status > 299:
		return errors.Wrapf(ErrRequestFailed, "status %d: %s", resp.status, serverMessage(resp.body))
	default:
		return nil
	}
}

// serverMessage extracts the message field of an error response body,
// falling back to a generic text.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}

		if envelope.Error != "" {
			return envelope.Error
		}
	}

	return "no error details provided"
}
