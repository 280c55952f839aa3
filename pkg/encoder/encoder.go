package encoder

import "net/url"

// ContentTypeForm is the content type of URL-encoded form bodies.
const ContentTypeForm = "application/x-www-form-urlencoded"

// Query percent-encodes values into a URL query string with keys in sorted
// order. An empty or nil map produces an empty string, with no leading
// '?' or '&'.
func Query(values map[string]string) string {
	if len(values) == 0 {
		return ""
	}
	q := make(url.Values, len(values))
	for k, v := range values {
		q.Set(k, v)
	}
	return q.Encode()
}

// Form encodes values identically to Query and returns the result as an
// HTTP body. Send it with ContentTypeForm.
func Form(values map[string]string) []byte {
	return []byte(Query(values))
}
