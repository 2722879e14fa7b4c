package doc

import (
	"encoding/json"
	"net/http"
)

// Headers is a normalised set of HTTP headers, header name to value(s).
//
// It serialises as a JSON object, keys in sorted order, so the same headers always
// produce the same bytes.
type Headers map[string]HeaderValue

// HeaderValue is the value(s) of a single header.
//
// A header with exactly one value serialises as a plain JSON string, anything else
// as an array of strings.
type HeaderValue []string

// MarshalJSON implements [json.Marshaler] for [HeaderValue].
func (h HeaderValue) MarshalJSON() ([]byte, error) {
	if len(h) == 1 {
		return json.Marshal(h[0])
	}

	if h == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(h))
}

// NormaliseHeaders converts a multi valued header mapping into [Headers].
//
// A nil header produces an empty, non-nil mapping. Values are copied so the result
// shares no memory with the original.
func NormaliseHeaders(header http.Header) Headers {
	normalised := make(Headers, len(header))

	for name, values := range header {
		normalised[name] = append(HeaderValue(nil), values...)
	}

	return normalised
}
