package example

import (
	"net/http"
	"net/url"

	"go.followtheprocess.codes/apidoc/internal/curl"
)

// Interaction is a single request/response pair made during an example.
type Interaction struct {
	// Headers sent with the request
	RequestHeaders http.Header `json:"request_headers,omitempty" toml:"request_headers,omitempty" yaml:"request_headers,omitempty"`

	// Query parameters sent with the request
	RequestQueryParameters url.Values `json:"request_query_parameters,omitempty" toml:"request_query_parameters,omitempty" yaml:"request_query_parameters,omitempty"`

	// Headers received with the response, may be multi valued
	ResponseHeaders http.Header `json:"response_headers,omitempty" toml:"response_headers,omitempty" yaml:"response_headers,omitempty"`

	// Curl is the request as a renderable curl command, nil if not captured
	Curl *curl.Command `json:"curl,omitempty" toml:"curl,omitempty" yaml:"curl,omitempty"`

	// The HTTP method of the request
	RequestMethod string `json:"request_method,omitempty" toml:"request_method,omitempty" yaml:"request_method,omitempty"`

	// The request path including any query string
	RequestPath string `json:"request_path,omitempty" toml:"request_path,omitempty" yaml:"request_path,omitempty"`

	// Content-Type of the request body
	RequestContentType string `json:"request_content_type,omitempty" toml:"request_content_type,omitempty" yaml:"request_content_type,omitempty"`

	// Status text of the response e.g. "OK"
	ResponseStatusText string `json:"response_status_text,omitempty" toml:"response_status_text,omitempty" yaml:"response_status_text,omitempty"`

	// Content-Type of the response body
	ResponseContentType string `json:"response_content_type,omitempty" toml:"response_content_type,omitempty" yaml:"response_content_type,omitempty"`

	// Raw request body, nil if the request had none. May contain a full HTTP message
	// (headers, blank line, binary payload) for multipart uploads
	RequestBody Body `json:"request_body,omitempty" toml:"request_body,omitempty" yaml:"request_body,omitempty"`

	// Raw response body
	ResponseBody Body `json:"response_body,omitempty" toml:"response_body,omitempty" yaml:"response_body,omitempty"`

	// HTTP status code of the response
	ResponseStatus int `json:"response_status,omitempty" toml:"response_status,omitempty" yaml:"response_status,omitempty"`
}

// Body is a captured HTTP message body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] so it's serialised as text rather than base64.
//
// A nil Body means there was no body, an empty non-nil Body is an empty one.
type Body []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Body].
func (b Body) MarshalText() ([]byte, error) {
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Body].
func (b *Body) UnmarshalText(text []byte) error {
	*b = append(make(Body, 0, len(text)), text...)
	return nil
}

// String implements [fmt.Stringer] for [Body].
func (b Body) String() string {
	return string(b)
}
