// Package upstream is the authenticated REST client for the backend
// serving the public site. Every response travels in the
// {success, data?, error?} envelope; failures come back as values, not
// panics, and nothing is retried automatically.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
)

const DefaultTimeout = 10 * time.Second

// ApiError carries the upstream failure shape: message, HTTP status and
// a short machine code. Timeouts always surface as code "TIMEOUT".
type ApiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
}

func (e *ApiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream: %s (%s)", e.Message, e.Code)
	}
	return "upstream: " + e.Message
}

// FieldError is one entry of the backend's express-validator style
// error array on rejected create/update submissions.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

type envelopeError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      *envelopeError  `json:"error"`
	Errors     []FieldError    `json:"errors"`
	Pagination json.RawMessage `json:"pagination"`
	Count      int             `json:"count"`
}

func (e *envelope) errorMessage(fallback string) string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

func (e *envelope) fieldErrors() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Path != "" && fe.Msg != "" {
			out[fe.Path] = fe.Msg
		}
	}
	return out
}

type tokenKey struct{}

// WithToken returns a context carrying the admin's upstream bearer
// token; the client attaches it to every request built from that
// context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok {
		return t
	}
	return ""
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// do executes one request and decodes the envelope. The returned error
// covers transport and decoding only; envelope-level failure is left to
// the caller so submissions can recover field errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(err, "building upstream request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var uerr *url.Error
		if pkgerrors.As(err, &uerr) && uerr.Timeout() {
			return nil, 0, &ApiError{Message: "Request timeout", Status: http.StatusRequestTimeout, Code: "TIMEOUT"}
		}
		return nil, 0, &ApiError{Message: err.Error(), Code: "NETWORK_ERROR"}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, &ApiError{
			Message: "invalid upstream response",
			Status:  resp.StatusCode,
			Code:    "NETWORK_ERROR",
		}
	}
	return &env, resp.StatusCode, nil
}

// call is do plus the common interpretation: an unsuccessful envelope
// becomes an ApiError.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	env, status, err := c.do(ctx, method, path, query, body, contentType)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		code := ""
		if env.Error != nil {
			code = env.Error.Code
		}
		return nil, &ApiError{Message: env.errorMessage("Request failed"), Status: status, Code: code}
	}
	return env, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	return c.call(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (*envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding request body")
	}
	return c.call(ctx, http.MethodPost, path, nil, bytes.NewReader(raw), "application/json")
}

func (c *Client) putJSON(ctx context.Context, path string, payload interface{}) (*envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding request body")
	}
	return c.call(ctx, http.MethodPut, path, nil, bytes.NewReader(raw), "application/json")
}

func (c *Client) patchJSON(ctx context.Context, path string, payload interface{}) (*envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding request body")
	}
	return c.call(ctx, http.MethodPatch, path, nil, bytes.NewReader(raw), "application/json")
}

func (c *Client) delete(ctx context.Context, path string) (*envelope, error) {
	return c.call(ctx, http.MethodDelete, path, nil, nil, "")
}

func decodeData(env *envelope, v interface{}) error {
	if len(env.Data) == 0 {
		return pkgerrors.New("upstream response has no data")
	}
	return pkgerrors.Wrap(json.Unmarshal(env.Data, v), "decoding upstream data")
}
