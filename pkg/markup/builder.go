package markup

import (
	"iter"
	"reflect"
)

// Factory constructs a node of a fixed tag.
type Factory func(content any, attrs ...Attr) *Node

// Builder hands out a Factory for any tag name.
type Builder struct{}

// H is the shared Builder.
var H Builder

// Tag returns a Factory for the given tag name. Any name is accepted here;
// an empty name faults when the factory is called.
func (Builder) Tag(name string) Factory {
	return func(content any, attrs ...Attr) *Node {
		return Element(name, content, attrs...)
	}
}

// Element creates a node with the given tag and attributes. When content is
// present it is attached as the node's children.
func Element(tag string, content any, attrs ...Attr) *Node {
	node := New(tag, attrs...)
	if hasContent(content) {
		return node.Attach(content)
	}
	return node
}

// hasContent reports whether content counts as present: nil, "" and empty
// sequences do not.
func hasContent(content any) bool {
	switch v := content.(type) {
	case nil:
		return false
	case *Node:
		return v != nil
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case []*Node:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case iter.Seq[any], iter.Seq[*Node], iter.Seq[string]:
		return true
	}
	rv := reflect.ValueOf(content)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	}
	return true
}
