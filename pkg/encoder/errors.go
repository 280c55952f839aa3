package encoder

import "errors"

// ErrFileRead is returned when a file's content stream cannot be fully read
// during multipart assembly.
var ErrFileRead = errors.New("encoder: failed to read file content")
