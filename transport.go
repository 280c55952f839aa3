package gram

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// Transport performs the actual network call for a prepared request. The
// default implementation wraps net/http; inject a custom one with
// WithTransport for testing or instrumentation.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Response is the raw result of a transport call, handed back to the caller
// for interpretation.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// URL is the final request URL after any redirects.
	URL string
}

type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(timeout time.Duration, insecureSkipTLS bool) *httpTransport {
	client := &http.Client{Timeout: timeout}
	if insecureSkipTLS {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in legacy interop
		}
	}
	return &httpTransport{client: client}
}

func (t *httpTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		hreq.Header.Set(k, v)
	}

	resp, err := t.client.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		URL:        resp.Request.URL.String(),
	}, nil
}
