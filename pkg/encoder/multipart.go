package encoder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Boundary is the fixed multipart boundary token. Callers that depend on
// bit-exact framing for test fixtures may rely on it being stable.
const Boundary = "MuL7Ip4rt80uND4rYF0o"

// File references a single file part of a multipart body. The caller owns
// Content; Multipart reads it exactly once, fully, and does not retain it.
type File struct {
	// Field is the form field name of the part.
	Field string
	// Name is the file name reported in the part's Content-Disposition
	// header; its extension also drives the part's Content-Type guess.
	Name string
	// Content is the file's byte stream.
	Content io.Reader
}

// MultipartBody is an assembled multipart/form-data request body.
type MultipartBody struct {
	// Body is the complete body, CRLF-framed and boundary-terminated.
	Body []byte
	// ContentType carries the boundary parameter.
	ContentType string
	// ContentLength is the exact byte length of Body.
	ContentLength int
}

// Multipart assembles a multipart/form-data body from text fields and file
// parts. Text fields are emitted first, in sorted key order, followed by the
// files in the order given. Each file part's Content-Type is guessed from
// the file name's extension, falling back to application/octet-stream.
func Multipart(values map[string]string, files []File) (*MultipartBody, error) {
	var buf bytes.Buffer

	for _, key := range slices.Sorted(maps.Keys(values)) {
		buf.WriteString("--" + Boundary + "\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: form-data; name=%q\r\n\r\n", key)
		buf.WriteString(values[key])
		buf.WriteString("\r\n")
	}

	for _, f := range files {
		buf.WriteString("--" + Boundary + "\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: form-data; name=%q; filename=%q\r\n", f.Field, f.Name)
		fmt.Fprintf(&buf, "Content-Type: %s\r\n\r\n", ContentTypeForFile(f.Name))
		if _, err := io.Copy(&buf, f.Content); err != nil {
			return nil, errors.Join(ErrFileRead, fmt.Errorf("read %q: %w", f.Name, err))
		}
		buf.WriteString("\r\n")
	}

	buf.WriteString("--" + Boundary + "--\r\n")

	return &MultipartBody{
		Body:          buf.Bytes(),
		ContentType:   "multipart/form-data; boundary=" + Boundary,
		ContentLength: buf.Len(),
	}, nil
}
