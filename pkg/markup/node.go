package markup

import "slices"

// Node is one markup element.
//
// A Node is owned by whoever built it. Attach mutates the node in place, so a
// node must not be shared between goroutines while it is still being built.
type Node struct {
	Tag      string // Element tag name (e.g., "div")
	Attrs    Attrs  // Attributes in output order
	Children []any  // Renderable children, nil when absent
}

// Attr represents a single attribute. An empty Value renders as a bare key.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value stored for key. Keys are compared by their output
// name, so "class_" finds "class".
func (a Attrs) Get(key string) (string, bool) {
	name := AttrName(key)
	for _, attr := range a {
		if AttrName(attr.Key) == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing key in place or appends a new one.
// Keys that render to the same name ("class" and "class_") are one key.
func (a *Attrs) Set(key, value string) {
	name := AttrName(key)
	for i := range *a {
		if AttrName((*a)[i].Key) == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// New creates a node with the given tag and attributes and no children.
// It panics with a Fault if tag is empty.
func New(tag string, attrs ...Attr) *Node {
	if tag == "" {
		panic(newFault(CodeEmptyTag, "", nil))
	}
	node := &Node{Tag: tag}
	for _, attr := range attrs {
		node.Attrs.Set(attr.Key, attr.Value)
	}
	return node
}

// Attach sets the node's children and returns the node.
//
// A []any is stored as is. Other sequences (typed slices, arrays and
// iterators) are collected one level deep into the child list, and any
// other value becomes a one-element child list. A second call replaces the
// children of the first.
func (n *Node) Attach(children any) *Node {
	var list []any
	if items, ok := children.([]any); ok {
		list = items
	} else if seq, ok := sequence(children); ok {
		list = slices.Collect(seq)
	} else {
		list = []any{children}
	}
	if IsVoidElement(n.Tag) && len(list) > 0 {
		panic(newFault(CodeVoidChildren, n.Tag, children))
	}
	n.Children = list
	return n
}

// String renders the node.
func (n *Node) String() string {
	return Render(n)
}
