// Package curl renders the curl command line equivalent of a documented HTTP request.
package curl

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"maps"
	"net/http"
	"net/textproto"
	"slices"
	"strings"
	"text/template"
)

//go:embed templates/curl.txt.tmpl
var curlTempl string

// curlTemplate is the parsed curl command line text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var curlTemplate = template.Must(template.New("curl").Parse(curlTempl))

// quoter escapes double quotes inside a header value.
//
//nolint:gochecknoglobals // Also has to be here
var quoter = strings.NewReplacer(`"`, `\"`)

// Command is a HTTP request as captured by the example recorder, ready to be
// rendered as a curl command line against a particular host.
type Command struct {
	// Request headers, header names may be canonical ("Content-Type") or in the
	// CGI style ("HTTP_CONTENT_TYPE")
	Headers http.Header `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// The HTTP method e.g. "GET"
	Method string `json:"method,omitempty" toml:"method,omitempty" yaml:"method,omitempty"`

	// Path (and optionally query) of the request, relative to the host
	Path string `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`

	// Request data, sent as a query string for GET and HEAD, otherwise as the body
	Data string `json:"data,omitempty" toml:"data,omitempty" yaml:"data,omitempty"`
}

// view is the data passed to the curl template.
type view struct {
	Method   string
	URL      string
	Query    string
	Data     string
	Headers  []string
	Globoff  bool
	SendData bool
}

// Render renders the command as a curl command line against host e.g. "https://api.example.com".
//
// Headers are sorted by name, any header whose name matches one in filter (case insensitively)
// is left out.
func (c Command) Render(host string, filter []string) (string, error) {
	method := strings.ToUpper(c.Method)
	if method == "" {
		method = http.MethodGet
	}

	v := view{
		Method:  method,
		URL:     host + c.Path,
		Headers: c.headers(filter),
	}

	switch method {
	case http.MethodGet:
		v.Globoff = true
		v.Query = query(c.Data)
	case http.MethodHead:
		v.Query = query(c.Data)
	default:
		v.SendData = true
		v.Data = strings.ReplaceAll(c.Data, "'", `'\''`)
	}

	buf := &bytes.Buffer{}
	if err := curlTemplate.Execute(buf, v); err != nil {
		return "", fmt.Errorf("could not render curl command for %s %s: %w", method, c.Path, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// headers returns the rendered curl flags for each of the command's headers.
func (c Command) headers(filter []string) []string {
	formatted := make(map[string]string, len(c.Headers))

	for key, values := range c.Headers {
		name := HeaderName(key)
		if slices.ContainsFunc(filter, func(f string) bool { return strings.EqualFold(f, name) }) {
			continue
		}

		formatted[name] = strings.Join(values, ", ")
	}

	flags := make([]string, 0, len(formatted))

	for _, name := range slices.Sorted(maps.Keys(formatted)) {
		value := formatted[name]

		if user, ok := basicAuth(name, value); ok {
			flags = append(flags, "-u "+user)
			continue
		}

		flags = append(flags, fmt.Sprintf(`-H "%s: %s"`, name, quoter.Replace(value)))
	}

	return flags
}

// HeaderName formats a header name as it appears on the wire, CGI style names
// like "HTTP_CONTENT_TYPE" become "Content-Type".
func HeaderName(key string) string {
	key = strings.TrimPrefix(key, "HTTP_")
	return textproto.CanonicalMIMEHeaderKey(strings.ReplaceAll(key, "_", "-"))
}

// query returns data as a query string suffix, or "" if there is no data.
func query(data string) string {
	if data == "" {
		return ""
	}

	return "?" + data
}

// basicAuth reports whether the header is a basic Authorization header and if so, returns
// the decoded "user:password" credentials.
func basicAuth(name, value string) (string, bool) {
	if name != "Authorization" {
		return "", false
	}

	scheme, credentials, found := strings.Cut(value, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		return "", false
	}

	return string(decoded), true
}
