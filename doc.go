// Package gram is a client library for OAuth2-protected HTTP APIs in the
// style of social-media platforms: it drives the OAuth2 token-exchange
// flows, builds correctly encoded requests (query string, URL-encoded form,
// multipart file upload), and signs request parameters with the shared
// client secret.
//
// # Features
//
//   - Deterministic HMAC-SHA256 request signing (pkg/signer)
//   - Query, form and multipart request encodings with stable framing (pkg/encoder)
//   - Authorization-code, password and user-id token exchanges
//   - Pluggable Transport with timeout and opt-in legacy TLS relaxation
//   - Functional options for custom HTTP clients, transports and logging
//   - Env-tagged configuration structs for environment-based setup
//
// # Usage
//
//	client, err := gram.New(gram.Config{
//		Host:           "api.example.com",
//		BasePath:       "/v1",
//		AuthorizeURL:   "https://api.example.com/oauth/authorize",
//		AccessTokenURL: "https://api.example.com/oauth/access_token",
//		APIName:        "Example",
//	}, gram.Credentials{
//		ClientID:     os.Getenv("GRAM_CLIENT_ID"),
//		ClientSecret: os.Getenv("GRAM_CLIENT_SECRET"),
//		RedirectURI:  "https://myapp.example.com/callback",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Send the user to the authorization page, then trade the code:
//	url := client.AuthorizeURL("basic", "comments")
//	token, err := client.ExchangeCode(ctx, code)
//
//	// Call API endpoints:
//	resp, err := client.Get(ctx, "/tags/golang", gram.Params{})
//
//	// Upload a file:
//	resp, err = client.Post(ctx, "/media/upload", gram.Params{
//		Text:  map[string]string{"caption": "hi"},
//		Files: []encoder.File{{Field: "photo", Name: "cat.jpg", Content: f}},
//	})
//
// # Concurrency
//
// Signing and encoding are pure; request preparation works on private
// copies of the caller's parameters. A Client is safe for concurrent use as
// long as SetAccessToken is not called while requests are in flight; guard
// that with external synchronization if you must rotate tokens on a shared
// client.
//
// # Error Handling
//
//   - *AuthExchangeError: token endpoint returned non-200 or an
//     undecodable body; Error() exposes the server's error message
//   - encoder.ErrFileRead: a multipart file stream could not be read
//   - transport errors (connection refused, timeout, TLS) pass through
//     unchanged; the library never retries
package gram
