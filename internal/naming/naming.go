// Package naming derives filesystem safe directory and file names from the free text
// resource names and descriptions attached to documented examples.
package naming

import (
	"regexp"
	"strings"
)

// Extension is the file extension given to every example document.
const Extension = ".json"

var (
	// whitespace matches a run of one or more whitespace characters.
	whitespace = regexp.MustCompile(`\s+`)

	// disallowed matches any character that may not appear in a derived filename.
	disallowed = regexp.MustCompile(`[^a-z_]`)
)

// Dirname returns the directory name for a resource.
//
// The resource name is lowercased and every run of whitespace is replaced by a
// single underscore, so "Foo  Bar" and "foo bar" both become "foo_bar". Two examples
// with the same resource name (ignoring case and spacing) always share a directory.
func Dirname(resource string) string {
	return whitespace.ReplaceAllString(strings.ToLower(resource), "_")
}

// Filename returns the file name for an example with the given description.
//
// The description is lowercased, whitespace runs become underscores and then anything
// outside of [a-z_] is removed before the ".json" extension is appended. Digits and
// punctuation are discarded entirely so "Create a User! (v2)" becomes "create_a_user_v.json".
//
// Descriptions that differ only in discarded characters produce the same filename.
func Filename(description string) string {
	return Basename(description) + Extension
}

// Basename returns the filename for description without the extension, it may be
// empty if the description contains no letters, underscores or whitespace.
func Basename(description string) string {
	underscored := whitespace.ReplaceAllString(strings.ToLower(description), "_")
	return disallowed.ReplaceAllString(underscored, "")
}

// IsLocal reports whether dirname names a single directory directly beneath the docs dir.
//
// Path separators, "." and ".." are all rejected regardless of platform.
func IsLocal(dirname string) bool {
	switch dirname {
	case "", ".", "..":
		return false
	default:
		return !strings.ContainsAny(dirname, `/\`+"\x00")
	}
}
