package backend

import (
	"VCS_Sandbox_Dashboard/pkg/access"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ServiceOnePrefix = "/service-one"
	ServiceTwoPrefix = "/service-two"

	DefaultTimeout = 10 * time.Second
)

type Response struct {
	StatusCode int
	Body       []byte
}

// Text returns the body as a string.
func (r Response) Text() string {
	return string(r.Body)
}

// Data returns the decoded JSON body, or the raw text when the body is not JSON.
func (r Response) Data() any {
	var v any
	if len(r.Body) > 0 && json.Unmarshal(r.Body, &v) == nil {
		return v
	}
	return r.Text()
}

func (r Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("Response.Decode: %w", err)
	}
	return nil
}

// Client sends requests to the sandbox backends through a single base address.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do returns *access.ResponseError for non-2xx answers and *access.NoResponseError when nothing came back.
// Any other error means the request could not be built.
func (c *Client) Do(ctx context.Context, method string, path string, body []byte) (Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Response{}, fmt.Errorf("Client.Do creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, access.NewNoResponseError(fmt.Errorf("Client.Do %s %s: %w", method, path, err))
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, access.NewNoResponseError(fmt.Errorf("Client.Do reading body: %w", err))
	}
	res := Response{
		StatusCode: resp.StatusCode,
		Body:       b,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, access.NewResponseError(resp.StatusCode, errorMessage(b))
	}
	return res, nil
}

func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body []byte) (Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	return payload.Message
}
