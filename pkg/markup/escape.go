package markup

import "golang.org/x/net/html"

// escapeHTML escapes text for safe inclusion in HTML content and in quoted
// attribute values: &, <, >, ", ' and \r become character references.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}
