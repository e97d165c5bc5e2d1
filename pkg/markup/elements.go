package markup

// voidElements are elements that cannot have children and are always
// written self-closing.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// VoidElements returns the void tag names in no particular order.
func VoidElements() []string {
	tags := make([]string, 0, len(voidElements))
	for tag := range voidElements {
		tags = append(tags, tag)
	}
	return tags
}

// Document structure elements

func Html(content any, attrs ...Attr) *Node  { return Element("html", content, attrs...) }
func Head(content any, attrs ...Attr) *Node  { return Element("head", content, attrs...) }
func Body(content any, attrs ...Attr) *Node  { return Element("body", content, attrs...) }
func Title(content any, attrs ...Attr) *Node { return Element("title", content, attrs...) }
func Meta(content any, attrs ...Attr) *Node  { return Element("meta", content, attrs...) }
func Link(content any, attrs ...Attr) *Node  { return Element("link", content, attrs...) }
func Base(content any, attrs ...Attr) *Node  { return Element("base", content, attrs...) }

// Content sectioning elements

func Header(content any, attrs ...Attr) *Node  { return Element("header", content, attrs...) }
func Footer(content any, attrs ...Attr) *Node  { return Element("footer", content, attrs...) }
func Main(content any, attrs ...Attr) *Node    { return Element("main", content, attrs...) }
func Nav(content any, attrs ...Attr) *Node     { return Element("nav", content, attrs...) }
func Section(content any, attrs ...Attr) *Node { return Element("section", content, attrs...) }
func Article(content any, attrs ...Attr) *Node { return Element("article", content, attrs...) }
func H1(content any, attrs ...Attr) *Node      { return Element("h1", content, attrs...) }
func H2(content any, attrs ...Attr) *Node      { return Element("h2", content, attrs...) }
func H3(content any, attrs ...Attr) *Node      { return Element("h3", content, attrs...) }
func H4(content any, attrs ...Attr) *Node      { return Element("h4", content, attrs...) }

// Text content elements

func Div(content any, attrs ...Attr) *Node  { return Element("div", content, attrs...) }
func P(content any, attrs ...Attr) *Node    { return Element("p", content, attrs...) }
func Span(content any, attrs ...Attr) *Node { return Element("span", content, attrs...) }
func Pre(content any, attrs ...Attr) *Node  { return Element("pre", content, attrs...) }
func Ul(content any, attrs ...Attr) *Node   { return Element("ul", content, attrs...) }
func Ol(content any, attrs ...Attr) *Node   { return Element("ol", content, attrs...) }
func Li(content any, attrs ...Attr) *Node   { return Element("li", content, attrs...) }
func Hr(content any, attrs ...Attr) *Node   { return Element("hr", content, attrs...) }

// Inline text semantics

func A(content any, attrs ...Attr) *Node      { return Element("a", content, attrs...) }
func Strong(content any, attrs ...Attr) *Node { return Element("strong", content, attrs...) }
func Em(content any, attrs ...Attr) *Node     { return Element("em", content, attrs...) }
func Small(content any, attrs ...Attr) *Node  { return Element("small", content, attrs...) }
func Code(content any, attrs ...Attr) *Node   { return Element("code", content, attrs...) }
func Br(content any, attrs ...Attr) *Node     { return Element("br", content, attrs...) }

// Table elements

func Table(content any, attrs ...Attr) *Node { return Element("table", content, attrs...) }
func Tr(content any, attrs ...Attr) *Node    { return Element("tr", content, attrs...) }
func Th(content any, attrs ...Attr) *Node    { return Element("th", content, attrs...) }
func Td(content any, attrs ...Attr) *Node    { return Element("td", content, attrs...) }

// Media and interactive elements

func Img(content any, attrs ...Attr) *Node     { return Element("img", content, attrs...) }
func Input(content any, attrs ...Attr) *Node   { return Element("input", content, attrs...) }
func Details(content any, attrs ...Attr) *Node { return Element("details", content, attrs...) }
func Summary(content any, attrs ...Attr) *Node { return Element("summary", content, attrs...) }
func Script(content any, attrs ...Attr) *Node  { return Element("script", content, attrs...) }
