package markup

import "strings"

// Attribute creates an attribute. Keys may use the reserved-word spelling
// ("class_", "for_"), see AttrName.
func Attribute(key, value string) Attr { return Attr{Key: key, Value: value} }

// Flag creates a valueless attribute such as "open" or "disabled".
func Flag(key string) Attr { return Attr{Key: key} }

// ID sets the id attribute.
func ID(id string) Attr { return Attribute("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Attribute("class", strings.Join(classes, " ")) }

// Style sets the style attribute.
func Style(style string) Attr { return Attribute("style", style) }

// Href sets the link target of an a or link element.
func Href(url string) Attr { return Attribute("href", url) }

// Rel sets the relationship of a linked resource.
func Rel(rel string) Attr { return Attribute("rel", rel) }

// Target sets the browsing context a link opens in, e.g. "_blank".
func Target(t string) Attr { return Attribute("target", t) }

// Type sets the MIME type of a linked resource.
func Type(t string) Attr { return Attribute("type", t) }

// Name sets the name attribute, used by meta elements.
func Name(name string) Attr { return Attribute("name", name) }

// Content sets the content attribute of a meta element.
func Content(c string) Attr { return Attribute("content", c) }

// Charset sets the document character encoding on a meta element.
func Charset(c string) Attr { return Attribute("charset", c) }

// Media sets the media query a stylesheet applies to.
func Media(m string) Attr { return Attribute("media", m) }
