package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy *bluemonday.Policy

func init() {
	// CMS editors write rich text; everything they produce is treated as
	// untrusted before it reaches a client.
	policy = bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "ul", "ol", "li", "blockquote")
}

// HTML strips unsafe markup from a CMS rich-text field.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
