// Package signer computes keyed signatures over API request parameters.
//
// A signature is an HMAC-SHA256 digest over a canonical base string derived
// from the endpoint path and the sorted request parameters, keyed by the
// shared client secret. The server recomputes the same digest to verify
// request integrity, so the base string construction must stay bit-exact.
//
// # Usage
//
//	sig := signer.Sign("/users/self/media", map[string]string{
//		"access_token": token,
//	}, clientSecret)
//
// Sign is a pure function: same inputs always produce the same digest, and
// the insertion order of the params map never affects the result.
package signer
