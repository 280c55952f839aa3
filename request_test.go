package gram_test

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gram"
	"github.com/dmitrymomot/gram/pkg/encoder"
	"github.com/dmitrymomot/gram/pkg/signer"
)

func newTestClient(t *testing.T, creds gram.Credentials, opts ...gram.Option) *gram.Client {
	t.Helper()
	c, err := gram.New(gram.Config{
		Host:     "api.example.com",
		BasePath: "/v1",
		APIName:  "Example",
	}, creds, opts...)
	require.NoError(t, err)
	return c
}

func TestPrepareRequest_GET(t *testing.T) {
	t.Parallel()

	t.Run("access token only, empty params", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok"})
		req, err := c.PrepareRequest(http.MethodGet, "/tags/test", gram.Params{}, false)
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com/v1/tags/test?access_token=tok", req.URL)
		require.Nil(t, req.Body)
	})

	t.Run("signature appended when a secret is configured", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok", ClientSecret: "s3cr3t"})
		req, err := c.PrepareRequest(http.MethodGet, "/tags/test", gram.Params{}, false)
		require.NoError(t, err)

		sig := signer.Sign("/tags/test", map[string]string{"access_token": "tok"}, "s3cr3t")
		require.Equal(t, "https://api.example.com/v1/tags/test?access_token=tok&sig="+sig, req.URL)
	})

	t.Run("signature covers the text params", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok", ClientSecret: "s3cr3t"})
		req, err := c.PrepareRequest(http.MethodGet, "/media", gram.Params{
			Text: map[string]string{"count": "5"},
		}, false)
		require.NoError(t, err)

		sig := signer.Sign("/media", map[string]string{"access_token": "tok", "count": "5"}, "s3cr3t")
		require.Equal(t, "https://api.example.com/v1/media?access_token=tok&count=5&sig="+sig, req.URL)
	})

	t.Run("client id fallback with secret exposure", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{ClientID: "cid", ClientSecret: "cs"})

		req, err := c.PrepareRequest(http.MethodGet, "/users/1", gram.Params{}, false)
		require.NoError(t, err)
		sig := signer.Sign("/users/1", map[string]string{"client_id": "cid"}, "cs")
		require.Equal(t, "https://api.example.com/v1/users/1?client_id=cid&sig="+sig, req.URL)

		req, err = c.PrepareRequest(http.MethodGet, "/users/1", gram.Params{}, true)
		require.NoError(t, err)
		sig = signer.Sign("/users/1", map[string]string{"client_id": "cid", "client_secret": "cs"}, "cs")
		require.Equal(t, "https://api.example.com/v1/users/1?client_id=cid&client_secret=cs&sig="+sig, req.URL)
	})

	t.Run("no credentials yields a well-formed query", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{})
		req, err := c.PrepareRequest(http.MethodGet, "/tags/test", gram.Params{
			Text: map[string]string{"count": "5"},
		}, false)
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com/v1/tags/test?count=5", req.URL)
	})

	t.Run("access token is percent-encoded in the auth query", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "a b&c"})
		req, err := c.PrepareRequest(http.MethodGet, "/p", gram.Params{}, false)
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com/v1/p?access_token=a+b%26c", req.URL)
	})

	t.Run("caller params are never mutated", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok", ClientSecret: "cs"})
		params := gram.Params{Text: map[string]string{"count": "5"}}
		_, err := c.PrepareRequest(http.MethodGet, "/media", params, true)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"count": "5"}, params.Text)
	})
}

func TestPrepareRequest_POST(t *testing.T) {
	t.Parallel()

	t.Run("form body with params mirrored in the URL", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok"})
		req, err := c.PrepareRequest(http.MethodPost, "/media/1/comments", gram.Params{
			Text: map[string]string{"text": "nice shot"},
		}, false)
		require.NoError(t, err)

		require.Equal(t, "text=nice+shot", string(req.Body))
		require.Equal(t, encoder.ContentTypeForm, req.Header["Content-Type"])
		require.Equal(t, "https://api.example.com/v1/media/1/comments?access_token=tok&text=nice+shot", req.URL)
	})

	t.Run("files force multipart and drop the params query and signature", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok", ClientSecret: "cs"})
		req, err := c.PrepareRequest(http.MethodPost, "/media/upload", gram.Params{
			Text:  map[string]string{"caption": "hi"},
			Files: []encoder.File{{Field: "photo", Name: "cat.jpg", Content: strings.NewReader("JPEG")}},
		}, false)
		require.NoError(t, err)

		require.Equal(t, "https://api.example.com/v1/media/upload?access_token=tok", req.URL)
		require.NotContains(t, req.URL, "sig=")
		require.NotContains(t, req.URL, "caption")

		require.Equal(t, "multipart/form-data; boundary="+encoder.Boundary, req.Header["Content-Type"])
		require.Equal(t, strconv.Itoa(len(req.Body)), req.Header["Content-Length"])
		require.True(t, strings.HasPrefix(string(req.Body),
			"--MuL7Ip4rt80uND4rYF0o\r\nContent-Disposition: form-data; name=\"caption\"\r\n\r\nhi\r\n"))
		require.True(t, strings.HasSuffix(string(req.Body), "--MuL7Ip4rt80uND4rYF0o--\r\n"))
	})

	t.Run("multipart file read failure surfaces the encoding error", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{AccessToken: "tok"})
		_, err := c.PrepareRequest(http.MethodPost, "/media/upload", gram.Params{
			Files: []encoder.File{{Field: "photo", Name: "cat.jpg", Content: failingReader{}}},
		}, false)
		require.ErrorIs(t, err, encoder.ErrFileRead)
	})
}

func TestPrepareRequest_Method(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, gram.Credentials{})
	_, err := c.PrepareRequest(http.MethodDelete, "/p", gram.Params{}, false)
	require.ErrorIs(t, err, gram.ErrUnsupportedMethod)
}

func TestPrepareRequest_UserAgent(t *testing.T) {
	t.Parallel()

	t.Run("default from API name", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{})
		req, err := c.PrepareRequest(http.MethodGet, "/p", gram.Params{}, false)
		require.NoError(t, err)
		require.Equal(t, "Example Go Client", req.Header["User-Agent"])
	})

	t.Run("override via option", func(t *testing.T) {
		t.Parallel()
		c := newTestClient(t, gram.Credentials{}, gram.WithUserAgent("custom/1.0"))
		req, err := c.PrepareRequest(http.MethodGet, "/p", gram.Params{}, false)
		require.NoError(t, err)
		require.Equal(t, "custom/1.0", req.Header["User-Agent"])
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk error") }
