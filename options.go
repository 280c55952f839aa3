package gram

import (
	"log/slog"
	"net/http"
)

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default HTTP transport. Useful for
// instrumentation or for stubbing network calls in tests.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient runs the default transport on a custom *http.Client. This
// is the simplest way to point the client at an httptest server.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport = &httpTransport{client: client}
	}
}

// WithLogger enables debug logging of prepared requests and token
// exchanges. Secrets are never logged. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithUserAgent overrides the default "{APIName} Go Client" User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
