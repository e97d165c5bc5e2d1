// Package markup provides the markup tree used to build HTML pages and
// the renderer that turns a tree into escaped HTML text.
//
// # Core Types
//
// Node is one element: a tag name, an ordered attribute list and optional
// children. A child is any renderable value: a *Node, a string, nil, or a
// (possibly nested, possibly lazy) sequence of renderable values.
//
// # Element API
//
// Nodes are created with Element or one of the per-tag helpers, and children
// are attached with Attach:
//
//	page := markup.Div(nil, markup.Style("text-align: center")).Attach([]any{
//	    markup.Strong("3"),
//	    " items",
//	})
//
// H exposes a factory for any tag name, including ones without a helper:
//
//	node := markup.H.Tag("details")(markup.Summary("More"), markup.Attribute("open", ""))
//
// # Rendering
//
// Render converts a renderable value to a string. Text and attribute values
// are escaped. Void elements (br, img, meta, ...) are written self-closing as
// "<br />".
//
// # Faults
//
// A malformed tree (empty tag, empty attribute key, children on a void
// element, a value that is not renderable) is a programming error. Render
// panics with a *Fault in that case. TryRender converts such a panic into an
// error for callers that must keep serving.
package markup
