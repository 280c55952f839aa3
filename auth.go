package gram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/gram/pkg/encoder"
)

// AccessToken is the result of a successful token exchange. User is the
// provider's user object, passed through as opaque JSON; persisting both is
// the caller's responsibility.
type AccessToken struct {
	Token string
	User  json.RawMessage
}

// oauthConfig builds the x/oauth2 view of this client's credentials.
// AuthStyleInParams matches the token endpoint's wire format: client
// credentials travel in the request body, never in a Basic auth header.
func (c *Client) oauthConfig(scope []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		RedirectURL:  c.creds.RedirectURI,
		Scopes:       scope,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.cfg.AuthorizeURL,
			TokenURL:  c.cfg.AccessTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizeURL builds the URL to send the user to for authorization:
// {authorize_url}?client_id=…&redirect_uri=…&response_type=code, with the
// requested scope values space-joined.
func (c *Client) AuthorizeURL(scope ...string) string {
	return c.oauthConfig(scope).AuthCodeURL("")
}

// AuthorizeURLWithState is AuthorizeURL with a CSRF state parameter.
// Validate the state on the callback before exchanging the code.
func (c *Client) AuthorizeURLWithState(state string, scope ...string) string {
	return c.oauthConfig(scope).AuthCodeURL(state)
}

// AuthorizeLoginURL requests the authorization page and returns the URL the
// provider redirects to, for flows that complete the login server-side. A
// non-200 response surfaces as *AuthExchangeError.
func (c *Client) AuthorizeLoginURL(ctx context.Context, scope ...string) (string, error) {
	authorizeURL := c.AuthorizeURL(scope...)
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, URL: authorizeURL})
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &AuthExchangeError{
			Description: fmt.Sprintf("the server returned a non-200 response for URL %s", authorizeURL),
		}
	}
	if loc := resp.Header.Get("Content-Location"); loc != "" {
		return loc, nil
	}
	return resp.URL, nil
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*AccessToken, error) {
	return c.exchange(ctx, url.Values{"code": {code}})
}

// ExchangeLogin trades resource-owner credentials for an access token
// (password grant). Scope values are space-joined.
func (c *Client) ExchangeLogin(ctx context.Context, username, password string, scope ...string) (*AccessToken, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}
	if len(scope) > 0 {
		form.Set("scope", strings.Join(scope, " "))
	}
	return c.exchange(ctx, form)
}

// ExchangeUserID trades a user ID for an access token. The provider treats
// this as a variant of the authorization-code grant, so grant_type stays
// "authorization_code".
func (c *Client) ExchangeUserID(ctx context.Context, userID string) (*AccessToken, error) {
	return c.exchange(ctx, url.Values{"user_id": {userID}})
}

// exchange POSTs a URL-encoded grant request to the token endpoint. The
// base fields carry the client identity and default to the
// authorization-code grant; override supplies the per-variant fields. The
// exchange is hand-rolled rather than routed through oauth2.Config because
// the endpoint's success payload carries a non-standard "user" object and
// errors arrive as an "error_message" field that must be surfaced verbatim.
func (c *Client) exchange(ctx context.Context, override url.Values) (*AccessToken, error) {
	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"redirect_uri":  {c.creds.RedirectURI},
		"grant_type":    {"authorization_code"},
	}
	for key, vals := range override {
		form[key] = vals
	}

	req := &Request{
		Method: http.MethodPost,
		URL:    c.cfg.AccessTokenURL,
		Body:   []byte(form.Encode()),
		Header: map[string]string{"Content-Type": encoder.ContentTypeForm},
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		AccessToken  string          `json:"access_token"`
		User         json.RawMessage `json:"user"`
		ErrorMessage string          `json:"error_message"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, &AuthExchangeError{
			Description: fmt.Sprintf("unexpected response from token endpoint (status %d)", resp.StatusCode),
		}
	}

	if resp.StatusCode != http.StatusOK {
		desc := payload.ErrorMessage
		if desc == "" {
			desc = fmt.Sprintf("token exchange failed with status %d", resp.StatusCode)
		}
		return nil, &AuthExchangeError{Description: desc}
	}
	if payload.AccessToken == "" {
		return nil, &AuthExchangeError{Description: "token endpoint response is missing access_token"}
	}

	c.log.DebugContext(ctx, "token exchange succeeded", "grant_type", form.Get("grant_type"))
	c.creds.AccessToken = payload.AccessToken
	return &AccessToken{Token: payload.AccessToken, User: payload.User}, nil
}
