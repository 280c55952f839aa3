package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
	"strings"
)

// Sign computes the lowercase hex HMAC-SHA256 digest of the canonical base
// string for endpointPath and params, keyed by secret.
//
// The base string is the endpoint path followed by one "|key=value" segment
// per parameter, with keys sorted byte-wise ascending. With no params the
// base string is the endpoint path alone. Values are not escaped: a value
// containing '=' or '|' is joined as-is, matching the format the server
// verifies against.
func Sign(endpointPath string, params map[string]string, secret string) string {
	var base strings.Builder
	base.WriteString(endpointPath)
	for _, key := range slices.Sorted(maps.Keys(params)) {
		base.WriteByte('|')
		base.WriteString(key)
		base.WriteByte('=')
		base.WriteString(params[key])
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(base.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
