package gram

import "errors"

var (
	// ErrMissingHost is returned by New when the config has no API host.
	ErrMissingHost = errors.New("gram: missing API host")

	// ErrUnsupportedMethod is returned by PrepareRequest for methods other
	// than GET and POST.
	ErrUnsupportedMethod = errors.New("gram: unsupported HTTP method")
)

// AuthExchangeError reports a failed token-endpoint exchange: a non-200
// response or a body that does not decode as the expected structure. The
// message is the server-provided error description when one was present.
type AuthExchangeError struct {
	Description string
}

func (e *AuthExchangeError) Error() string {
	return e.Description
}
