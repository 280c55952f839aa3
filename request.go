package gram

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/gram/pkg/encoder"
	"github.com/dmitrymomot/gram/pkg/signer"
)

// Request is a fully prepared API request, ready to hand to a Transport.
// It is produced once per call and never reused.
type Request struct {
	Method string
	URL    string
	Body   []byte
	Header map[string]string
}

// PrepareRequest assembles the URL, body and headers for a call to path.
//
// File params force a multipart body; the URL then carries only the auth
// query, without the text params or a signature (signed multipart requests
// are not part of the verified wire format). Otherwise the text params are
// encoded into the URL query — and, for POST, into a form body as well —
// and a "sig" parameter is appended whenever a client secret is configured.
//
// includeSecret also exposes the client secret in the auth query and the
// signed parameter set; use it only for server-to-server calls that never
// reach a browser. The caller's params are never mutated.
func (c *Client) PrepareRequest(method, path string, params Params, includeSecret bool) (*Request, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, errors.Join(ErrUnsupportedMethod, fmt.Errorf("method %q", method))
	}

	req := &Request{Method: method, Header: make(map[string]string, 3)}

	if len(params.Files) > 0 {
		mp, err := encoder.Multipart(params.Text, params.Files)
		if err != nil {
			return nil, err
		}
		req.Body = mp.Body
		req.Header["Content-Type"] = mp.ContentType
		req.Header["Content-Length"] = strconv.Itoa(mp.ContentLength)
		req.URL = c.buildURL(path, params, includeSecret, false)
	} else {
		if method == http.MethodPost {
			req.Body = encoder.Form(params.Text)
			req.Header["Content-Type"] = encoder.ContentTypeForm
		}
		req.URL = c.buildURL(path, params, includeSecret, true)
	}

	if req.Header["User-Agent"] == "" {
		req.Header["User-Agent"] = c.userAgent
	}
	return req, nil
}

// buildURL assembles {protocol}://{host}{base_path}{path} followed by the
// auth query, the encoded text params (skipped on the multipart path) and
// the signature suffix, in that order.
func (c *Client) buildURL(path string, params Params, includeSecret, withParams bool) string {
	var parts []string
	if q := c.authQuery(includeSecret); q != "" {
		parts = append(parts, q)
	}
	if withParams {
		if q := encoder.Query(params.Text); q != "" {
			parts = append(parts, q)
		}
		if c.creds.ClientSecret != "" {
			parts = append(parts, "sig="+c.sign(path, params, includeSecret))
		}
	}

	u := c.cfg.Protocol + "://" + c.cfg.Host + c.cfg.BasePath + path
	if len(parts) > 0 {
		u += "?" + strings.Join(parts, "&")
	}
	return u
}

// sign computes the request signature over a private working copy of the
// text params with the session credentials injected. The signature is a
// hash over this frozen snapshot: mutating the params afterwards requires
// re-signing.
func (c *Client) sign(path string, params Params, includeSecret bool) string {
	working := params.cloneText()
	if c.creds.AccessToken != "" {
		working["access_token"] = c.creds.AccessToken
	} else if c.creds.ClientID != "" {
		working["client_id"] = c.creds.ClientID
	}
	if includeSecret && c.creds.ClientSecret != "" {
		working["client_secret"] = c.creds.ClientSecret
	}
	return signer.Sign(path, working, c.creds.ClientSecret)
}

// authQuery renders the authentication query parameters. The access token
// takes priority over the client ID; with neither set the result is empty.
func (c *Client) authQuery(includeSecret bool) string {
	switch {
	case c.creds.AccessToken != "":
		return c.cfg.AccessTokenField + "=" + url.QueryEscape(c.creds.AccessToken)
	case c.creds.ClientID != "":
		q := "client_id=" + url.QueryEscape(c.creds.ClientID)
		if includeSecret && c.creds.ClientSecret != "" {
			q += "&client_secret=" + url.QueryEscape(c.creds.ClientSecret)
		}
		return q
	default:
		return ""
	}
}
