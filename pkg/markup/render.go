package markup

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Render converts a renderable value to escaped HTML text.
//
// It panics with a *Fault when the tree is malformed.
func Render(v any) string {
	var b strings.Builder
	renderValue(&b, v)
	return b.String()
}

// TryRender is like Render but returns a *Fault as an error instead of
// panicking. Panics that are not faults propagate.
func TryRender(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			out, err = "", f
		}
	}()
	return Render(v), nil
}

// renderValue dispatches rendering based on the value's shape.
func renderValue(b *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		return
	case string:
		b.WriteString(escapeHTML(v))
	case *Node:
		if v != nil {
			renderNode(b, v)
		}
	case Node:
		renderNode(b, &v)
	default:
		seq, ok := sequence(v)
		if !ok {
			panic(newFault(CodeUnsupportedValue, "", v))
		}
		for child := range seq {
			renderValue(b, child)
		}
	}
}

// sequence adapts every supported sequence shape to an iter.Seq[any].
func sequence(v any) (iter.Seq[any], bool) {
	switch v := v.(type) {
	case []any:
		return func(yield func(any) bool) {
			for _, child := range v {
				if !yield(child) {
					return
				}
			}
		}, true
	case iter.Seq[any]:
		return orEmpty(v), true
	case func(func(any) bool):
		return orEmpty(v), true
	case iter.Seq[*Node]:
		return adaptSeq(v), true
	case func(func(*Node) bool):
		return adaptSeq[*Node](v), true
	case iter.Seq[string]:
		return adaptSeq(v), true
	case func(func(string) bool):
		return adaptSeq[string](v), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// A nil iterator is an empty sequence.
func orEmpty(seq iter.Seq[any]) iter.Seq[any] {
	if seq == nil {
		return func(func(any) bool) {}
	}
	return seq
}

func adaptSeq[T any](seq iter.Seq[T]) iter.Seq[any] {
	if seq == nil {
		return func(func(any) bool) {}
	}
	return func(yield func(any) bool) {
		for item := range seq {
			if !yield(item) {
				return
			}
		}
	}
}

// renderNode renders an element with its attributes and children.
func renderNode(b *strings.Builder, node *Node) {
	if node.Tag == "" {
		panic(newFault(CodeEmptyTag, "", nil))
	}

	if IsVoidElement(node.Tag) {
		if len(node.Children) > 0 {
			panic(newFault(CodeVoidChildren, node.Tag, node.Children))
		}
		fmt.Fprintf(b, "<%s%s />", node.Tag, renderAttrs(node))
		return
	}

	fmt.Fprintf(b, "<%s%s>", node.Tag, renderAttrs(node))
	for _, child := range node.Children {
		renderValue(b, child)
	}
	fmt.Fprintf(b, "</%s>", node.Tag)
}

// renderAttrs renders the attribute list with its leading space, or ""
// when there are no attributes.
func renderAttrs(node *Node) string {
	if len(node.Attrs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(node.Attrs))
	for _, attr := range node.Attrs {
		if attr.Key == "" {
			panic(newFault(CodeEmptyAttrKey, node.Tag, nil))
		}
		key := AttrName(attr.Key)
		if attr.Value == "" {
			parts = append(parts, key)
			continue
		}
		parts = append(parts, key+`="`+escapeHTML(attr.Value)+`"`)
	}
	return " " + strings.Join(parts, " ")
}
