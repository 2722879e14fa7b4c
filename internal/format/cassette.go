package format

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.followtheprocess.codes/apidoc/internal/curl"
	"go.followtheprocess.codes/apidoc/internal/example"
	"go.followtheprocess.codes/apidoc/internal/naming"
	"go.yaml.in/yaml/v4"
	"gopkg.in/dnaeon/go-vcr.v2/cassette"
)

// rootResource is the resource name given to interactions against "/".
const rootResource = "Root"

// CassetteImporter is an [Importer] that imports HTTP interactions recorded by
// go-vcr into an [example.Collection].
//
// Each recorded interaction becomes one example, the resource is the first segment
// of the request path and the description is the method and path e.g. "GET /users/1".
type CassetteImporter struct{}

// Import implements [Importer] for [CassetteImporter] and imports the given
// go-vcr cassette into an [example.Collection].
func (c CassetteImporter) Import(r io.Reader) (example.Collection, error) {
	var recorded cassette.Cassette

	if err := yaml.NewDecoder(r).Decode(&recorded); err != nil {
		return example.Collection{}, fmt.Errorf("could not decode cassette: %w", err)
	}

	collection := example.Collection{
		Examples: make([]example.Record, 0, len(recorded.Interactions)),
	}

	for i, interaction := range recorded.Interactions {
		if interaction == nil {
			continue
		}

		record, err := fromInteraction(*interaction)
		if err != nil {
			return example.Collection{}, fmt.Errorf("cassette interaction %d: %w", i, err)
		}

		collection.Examples = append(collection.Examples, record)
	}

	return collection, nil
}

// fromInteraction converts a single recorded interaction into an [example.Record].
func fromInteraction(interaction cassette.Interaction) (example.Record, error) {
	req := interaction.Request
	res := interaction.Response

	u, err := url.Parse(req.URL)
	if err != nil {
		return example.Record{}, fmt.Errorf("invalid request url %q: %w", req.URL, err)
	}

	method := strings.ToUpper(req.Method)

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	requestPath := path
	if u.RawQuery != "" {
		requestPath += "?" + u.RawQuery
	}

	data := req.Body
	if data == "" && len(req.Form) != 0 {
		data = req.Form.Encode()
	}

	interactionRecord := example.Interaction{
		RequestHeaders:         req.Headers,
		RequestQueryParameters: u.Query(),
		ResponseHeaders:        res.Headers,
		Curl: &curl.Command{
			Method:  method,
			Path:    requestPath,
			Data:    data,
			Headers: req.Headers,
		},
		RequestMethod:       method,
		RequestPath:         requestPath,
		RequestContentType:  req.Headers.Get("Content-Type"),
		ResponseStatusText:  statusText(res.Status, res.Code),
		ResponseContentType: res.Headers.Get("Content-Type"),
		ResponseBody:        example.Body(res.Body),
		ResponseStatus:      res.Code,
	}

	if data != "" {
		interactionRecord.RequestBody = example.Body(data)
	}

	return example.Record{
		ResourceName: resource(path),
		HTTPMethod:   method,
		Route:        path,
		Description:  method + " " + path,
		Requests:     []example.Interaction{interactionRecord},
	}, nil
}

// resource returns the resource name for a request path, the first path segment.
//
// The segment is unescaped unless that would turn it into something that is not a
// plain directory name e.g. "%2e%2e" or "a%2Fb", in which case it is kept escaped.
func resource(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if segment == "" {
		return rootResource
	}

	unescaped, err := url.PathUnescape(segment)
	if err != nil || !naming.IsLocal(naming.Dirname(unescaped)) {
		return segment
	}

	return unescaped
}

// statusText returns the reason phrase from a recorded status line like "200 OK",
// falling back to the standard text for code.
func statusText(status string, code int) string {
	if _, text, found := strings.Cut(status, " "); found && text != "" {
		return text
	}

	return http.StatusText(code)
}
