package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs/url"
	"github.com/viant/taskmgr/client/auth/store"
	"github.com/viant/taskmgr/schema"
	"go.uber.org/zap"
)

const maxResponseSize = 32 << 20

type Client struct {
	baseURL     string
	httpClient  *http.Client
	store       store.Store
	logger      *zap.Logger
	concurrency int
}

// Store returns the credential store the client logs in to
func (c *Client) Store() store.Store {
	return c.store
}

// Do sends req and decodes the response envelope data into out, which may be nil.
// A non-2xx response is returned as *schema.Error.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) error {
	body, contentType, err := req.encode()
	if err != nil {
		return fmt.Errorf("failed to encode %v %v: %w", req.Method, req.Path, err)
	}
	URL := url.Join(c.baseURL, strings.TrimPrefix(req.URI(), "/"))
	httpRequest, err := http.NewRequestWithContext(ctx, req.Method, URL, body)
	if err != nil {
		return err
	}
	for key, values := range req.Header {
		httpRequest.Header[key] = append([]string(nil), values...)
	}
	if contentType != "" {
		httpRequest.Header.Set("Content-Type", contentType)
	}
	httpRequest.Header.Set("Accept", "application/json")
	requestID := httpRequest.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
		httpRequest.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read %v %v response: %w", req.Method, req.Path, err)
	}
	envelope := &schema.Envelope{}
	decodeErr := json.Unmarshal(data, envelope)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ret := schema.NewError(resp.StatusCode, "")
		ret.RequestID = requestID
		if decodeErr == nil {
			ret.Message = envelope.Message
		}
		c.logger.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("requestId", requestID))
		return ret
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("invalid %v %v response: %w", req.Method, req.Path, decodeErr)
	}
	if err = envelope.Decode(out); err != nil {
		return fmt.Errorf("failed to decode %v %v data: %w", req.Method, req.Path, err)
	}
	return nil
}

func send[R any](ctx context.Context, client *Client, req *Request) (*R, error) {
	var result R
	if err := client.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// New creates a client for the backend at baseURL. httpClient should carry a
// transport.RoundTripper sharing tokens with the client.
func New(baseURL string, httpClient *http.Client, tokens store.Store, options ...Option) *Client {
	ret := &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		store:       tokens,
		logger:      zap.NewNop(),
		concurrency: 4,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	return ret
}
