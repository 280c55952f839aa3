package gram

import (
	"github.com/google/go-querystring/query"

	"github.com/dmitrymomot/gram/pkg/encoder"
)

// Params carries the parameters of a single API request. Text fields and
// file fields are separate slots, so the request builder's encoding choice
// is an explicit branch: any file present forces a multipart body.
type Params struct {
	Text  map[string]string
	Files []encoder.File
}

// ParamsFrom converts a struct with `url` tags into text Params using
// go-querystring, which keeps endpoint parameters typed at call sites:
//
//	type feedOpts struct {
//		Count int    `url:"count,omitempty"`
//		MaxID string `url:"max_id,omitempty"`
//	}
//	params, err := gram.ParamsFrom(feedOpts{Count: 20})
//
// Multi-valued fields keep their first value; the parameter set is a
// single-valued mapping by design.
func ParamsFrom(v any) (Params, error) {
	values, err := query.Values(v)
	if err != nil {
		return Params{}, err
	}

	text := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			text[key] = vals[0]
		}
	}
	return Params{Text: text}, nil
}

// clone returns a private copy of the text fields, never nil.
func (p Params) cloneText() map[string]string {
	text := make(map[string]string, len(p.Text)+3)
	for k, v := range p.Text {
		text[k] = v
	}
	return text
}
