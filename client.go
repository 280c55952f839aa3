package gram

import (
	"context"
	"log/slog"
	"net/http"
)

// Client prepares and executes requests against a single API using one set
// of credentials. Construct it with New; the zero value is not usable.
type Client struct {
	cfg       Config
	creds     Credentials
	transport Transport
	log       *slog.Logger
	userAgent string
}

// New creates a Client for the API described by cfg, authenticating with
// creds. Returns ErrMissingHost when cfg names no API host.
func New(cfg Config, creds Credentials, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Host == "" {
		return nil, ErrMissingHost
	}

	c := &Client{
		cfg:       cfg,
		creds:     creds,
		log:       slog.New(slog.DiscardHandler),
		userAgent: cfg.APIName + " Go Client",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = newHTTPTransport(cfg.Timeout, cfg.InsecureSkipTLS)
	}
	return c, nil
}

// SetAccessToken attaches an access token obtained out of band. Exchange
// methods call this automatically on success. Not synchronized: callers
// sharing a Client across goroutines must serialize token rotation
// themselves.
func (c *Client) SetAccessToken(token string) {
	c.creds.AccessToken = token
}

// AccessToken reports the access token currently attached to the client.
func (c *Client) AccessToken() string {
	return c.creds.AccessToken
}

// Do executes a prepared request through the transport. Transport failures
// are returned unchanged; non-2xx responses are not errors — the raw
// response is always handed back for interpretation.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Header == nil {
		req.Header = map[string]string{}
	}
	if req.Header["User-Agent"] == "" {
		req.Header["User-Agent"] = c.userAgent
	}

	c.log.DebugContext(ctx, "executing request", "method", req.Method, "url", req.URL)
	return c.transport.Execute(ctx, req)
}

// Get prepares and executes a GET request to path.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Response, error) {
	req, err := c.PrepareRequest(http.MethodGet, path, params, false)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Post prepares and executes a POST request to path.
func (c *Client) Post(ctx context.Context, path string, params Params) (*Response, error) {
	req, err := c.PrepareRequest(http.MethodPost, path, params, false)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}
