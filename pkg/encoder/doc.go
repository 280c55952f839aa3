// Package encoder serializes request parameters into the three wire
// encodings used by the API: URL query strings, application/x-www-form-urlencoded
// bodies, and multipart/form-data bodies with file parts.
//
// All encoders are pure: input maps are never mutated, and output is
// deterministic (keys are emitted in sorted order), so callers can rely on
// bit-exact bodies for test fixtures. The multipart boundary is the fixed
// constant Boundary and is stable across calls.
//
// # Usage
//
//	q := encoder.Query(map[string]string{"count": "5"})
//
//	mp, err := encoder.Multipart(
//		map[string]string{"caption": "hi"},
//		[]encoder.File{{Field: "photo", Name: "cat.jpg", Content: f}},
//	)
//
// File contents are read exactly once, fully, into the assembled body; the
// reader is not retained afterwards. A failed read is reported as an error
// wrapping ErrFileRead.
package encoder
