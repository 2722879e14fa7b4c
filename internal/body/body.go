// Package body implements a binary safe encoding for captured HTTP messages so they
// can be embedded in a JSON document.
//
// A captured message is headers, a blank line, then a body that may contain bytes
// that are not valid text (images, gzip etc.). Only the first line of the body is
// treated as the payload and base64 encoded, the headers and anything following
// the payload (typically a trailing multipart boundary) are kept verbatim.
//
// This is a heuristic, not a multipart parser: a body containing more than one
// binary part, or a payload that itself contains a CRLF, is not round tripped.
package body

import (
	"bytes"
	"encoding/base64"
)

const (
	// lineWidth is the maximum number of encoded characters on each base64 line.
	lineWidth = 60

	// leading is the set of bytes trimmed from the start of a message.
	leading = " \t\n\v\f\r"

	// trailing is the set of bytes trimmed from the end of a message.
	trailing = leading + "\x00"
)

var (
	// separator divides the headers of a message from its body.
	separator = []byte("\r\n\r\n")

	// newline divides the binary payload of a body from whatever follows it.
	newline = []byte("\r\n")
)

// Encode returns a JSON embeddable representation of raw.
//
// raw is trimmed of surrounding whitespace. If it contains no blank line separator
// the trimmed message is returned as is, otherwise the segment between the separator
// and the next CRLF is replaced by its line wrapped base64 encoding.
//
// Encode never fails, raw may be any byte sequence.
func Encode(raw []byte) string {
	trimmed := bytes.TrimRight(bytes.TrimLeft(raw, leading), trailing)

	headers, rest, found := bytes.Cut(trimmed, separator)
	if !found {
		return string(trimmed)
	}

	binary, after, _ := bytes.Cut(rest, newline)

	buf := &bytes.Buffer{}
	buf.Grow(len(trimmed) + base64.StdEncoding.EncodedLen(len(binary)))

	buf.Write(headers)
	buf.Write(separator)
	buf.WriteString(Wrapped(binary))
	buf.Write(newline)
	buf.Write(after)

	return buf.String()
}

// Wrapped returns the standard base64 encoding of data split into lines of at
// most 60 characters, each terminated by a newline.
//
// Empty data encodes to the empty string.
func Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	buf := &bytes.Buffer{}
	buf.Grow(len(encoded) + len(encoded)/lineWidth + 1)

	for len(encoded) > 0 {
		n := min(lineWidth, len(encoded))
		buf.WriteString(encoded[:n])
		buf.WriteByte('\n')
		encoded = encoded[n:]
	}

	return buf.String()
}
