package gram

import "time"

// Config describes the API surface the client talks to. It is a plain value:
// set it once, pass it to New, and treat it as immutable afterwards.
type Config struct {
	// Host is the API host, e.g. "api.example.com".
	Host string `env:"GRAM_HOST,required"`
	// BasePath is prepended to every endpoint path, e.g. "/v1".
	BasePath string `env:"GRAM_BASE_PATH" envDefault:""`
	// AuthorizeURL is the OAuth2 authorization endpoint.
	AuthorizeURL string `env:"GRAM_AUTHORIZE_URL" envDefault:""`
	// AccessTokenURL is the OAuth2 token endpoint.
	AccessTokenURL string `env:"GRAM_ACCESS_TOKEN_URL" envDefault:""`
	// AccessTokenField is the query parameter carrying the access token.
	// Some providers use "oauth_token".
	AccessTokenField string `env:"GRAM_ACCESS_TOKEN_FIELD" envDefault:"access_token"`
	// Protocol is the URL scheme for API requests.
	Protocol string `env:"GRAM_PROTOCOL" envDefault:"https"`
	// APIName names the target API, e.g. "Instagram"; it builds the default
	// User-Agent header.
	APIName string `env:"GRAM_API_NAME" envDefault:"Generic API"`
	// Timeout bounds each request made through the default transport.
	Timeout time.Duration `env:"GRAM_TIMEOUT" envDefault:"30s"`
	// InsecureSkipTLS disables TLS certificate validation on the default
	// transport. Legacy interoperability only; leave off.
	InsecureSkipTLS bool `env:"GRAM_INSECURE_SKIP_TLS" envDefault:"false"`
}

// withDefaults fills zero-valued fields with their documented defaults.
func (c Config) withDefaults() Config {
	if c.AccessTokenField == "" {
		c.AccessTokenField = "access_token"
	}
	if c.Protocol == "" {
		c.Protocol = "https"
	}
	if c.APIName == "" {
		c.APIName = "Generic API"
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// Credentials holds the OAuth2 client identity and session state. All fields
// are optional; an empty string means absent. The access token takes
// priority over the client ID when both are set.
type Credentials struct {
	ClientID     string `env:"GRAM_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"GRAM_CLIENT_SECRET" envDefault:""`
	AccessToken  string `env:"GRAM_ACCESS_TOKEN" envDefault:""`
	RedirectURI  string `env:"GRAM_REDIRECT_URI" envDefault:""`
}
