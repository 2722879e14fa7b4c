// Package doc builds the serialisable JSON documents describing API examples: one
// [Example] per captured example and a single [Index] listing every documented resource.
//
// Documents are plain structs populated eagerly from an [example.Record], they are
// built once per write and exist only long enough to be serialised.
package doc

import (
	"net/url"

	"go.followtheprocess.codes/apidoc/internal/body"
	"go.followtheprocess.codes/apidoc/internal/curl"
	"go.followtheprocess.codes/apidoc/internal/example"
	"go.followtheprocess.codes/apidoc/internal/naming"
)

// Options configure how example documents are built.
type Options struct {
	// CurlHost is the host curl commands are rendered against e.g. "https://api.example.com".
	//
	// If empty, curl commands are not rendered and every request's curl is null.
	CurlHost string

	// CurlHeadersToFilter are header names left out of rendered curl commands.
	CurlHeadersToFilter []string
}

// Example is the JSON document describing a single example.
type Example struct {
	// Group is the documentation grouping tag from the record's metadata.
	Group any `json:"-"`

	// Dirname is the directory (relative to the docs dir) the document is written to.
	Dirname string `json:"-"`

	// Filename is the name of the file the document is written to.
	Filename string `json:"-"`

	Resource    string              `json:"resource"`
	HTTPMethod  string              `json:"http_method"`
	Route       string              `json:"route"`
	Description string              `json:"description"`
	Explanation string              `json:"explanation"`
	Parameters  []example.Parameter `json:"parameters"`
	Requests    []Request           `json:"requests"`
}

// Link returns the path of the document relative to the docs dir, always
// slash separated.
func (e Example) Link() string {
	return e.Dirname + "/" + e.Filename
}

// Request is the JSON representation of a single request/response pair.
type Request struct {
	RequestMethod          string     `json:"request_method"`
	RequestPath            string     `json:"request_path"`
	RequestBody            *string    `json:"request_body,omitempty"`
	RequestHeaders         Headers    `json:"request_headers"`
	RequestQueryParameters url.Values `json:"request_query_parameters"`
	RequestContentType     string     `json:"request_content_type,omitempty"`
	ResponseStatus         int        `json:"response_status"`
	ResponseStatusText     string     `json:"response_status_text"`
	ResponseBody           string     `json:"response_body"`
	ResponseHeaders        Headers    `json:"response_headers"`
	ResponseContentType    string     `json:"response_content_type,omitempty"`
	Curl                   *string    `json:"curl"`
}

// NewExample builds the [Example] document for record.
//
// Request bodies are passed through [body.Encode] so binary payloads are valid JSON. If the
// record's interactions carry a curl command and options.CurlHost is set, the command is
// rendered against that host and encoded in the same way, otherwise curl is left null.
func NewExample(record example.Record, options Options) Example {
	parameters := record.Parameters
	if parameters == nil {
		parameters = []example.Parameter{}
	}

	requests := make([]Request, 0, len(record.Requests))
	for _, interaction := range record.Requests {
		requests = append(requests, newRequest(interaction, options))
	}

	return Example{
		Group:       record.Group(),
		Dirname:     naming.Dirname(record.ResourceName),
		Filename:    naming.Filename(record.Description),
		Resource:    record.ResourceName,
		HTTPMethod:  record.HTTPMethod,
		Route:       record.Route,
		Description: record.Description,
		Explanation: record.Explanation,
		Parameters:  parameters,
		Requests:    requests,
	}
}

// NewExamples builds an [Example] for every record, preserving order.
func NewExamples(records []example.Record, options Options) []Example {
	examples := make([]Example, 0, len(records))
	for _, record := range records {
		examples = append(examples, NewExample(record, options))
	}

	return examples
}

// newRequest builds the JSON representation of a single interaction.
func newRequest(interaction example.Interaction, options Options) Request {
	query := interaction.RequestQueryParameters
	if query == nil {
		query = url.Values{}
	}

	request := Request{
		RequestMethod:          interaction.RequestMethod,
		RequestPath:            interaction.RequestPath,
		RequestHeaders:         NormaliseHeaders(interaction.RequestHeaders),
		RequestQueryParameters: query,
		RequestContentType:     interaction.RequestContentType,
		ResponseStatus:         interaction.ResponseStatus,
		ResponseStatusText:     interaction.ResponseStatusText,
		ResponseBody:           interaction.ResponseBody.String(),
		ResponseHeaders:        NormaliseHeaders(interaction.ResponseHeaders),
		ResponseContentType:    interaction.ResponseContentType,
	}

	if interaction.RequestBody != nil {
		encoded := body.Encode(interaction.RequestBody)
		request.RequestBody = &encoded
	}

	if rendered, ok := renderCurl(interaction.Curl, options); ok {
		encoded := body.Encode([]byte(rendered))
		request.Curl = &encoded
	}

	return request
}

// renderCurl renders command against the configured curl host, reporting whether
// there is anything to show.
//
// A missing command, an unset host or a command that fails to render all leave
// curl absent.
func renderCurl(command *curl.Command, options Options) (string, bool) {
	if command == nil || options.CurlHost == "" {
		return "", false
	}

	rendered, err := command.Render(options.CurlHost, options.CurlHeadersToFilter)
	if err != nil {
		return "", false
	}

	return rendered, true
}
