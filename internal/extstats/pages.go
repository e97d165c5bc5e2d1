package extstats

import (
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/extstats/internal/config"
	. "github.com/vango-dev/extstats/pkg/markup"
)

// Pages assembles archive pages. The zero value is not usable; create one
// with NewPages.
type Pages struct {
	title           string
	githubURL       string
	sourceViewerURL string
	styleSheet      string
	now             func() time.Time
}

// Option configures Pages.
type Option func(*Pages)

// WithClock sets the clock used for the "Last update" line.
func WithClock(now func() time.Time) Option {
	return func(p *Pages) {
		p.now = now
	}
}

// NewPages creates page assemblers from the site configuration. Empty
// fields fall back to the config defaults.
func NewPages(site config.SiteConfig, opts ...Option) *Pages {
	p := &Pages{
		title:           orDefault(site.Title, config.DefaultTitle),
		githubURL:       orDefault(site.GitHubURL, config.DefaultGitHubURL),
		sourceViewerURL: orDefault(site.SourceViewerURL, config.DefaultSourceViewerURL),
		styleSheet:      orDefault(site.StyleSheet, config.DefaultStyleSheet),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Base wraps content in the page skeleton shared by every page. A non-empty
// titlePrefix is prepended to the site title.
func (p *Pages) Base(content any, titlePrefix string) *Node {
	title := p.title
	if titlePrefix != "" {
		title = titlePrefix + " - " + p.title
	}

	return Html([]any{
		Head([]any{
			Meta(nil, Charset("utf-8")),
			Meta(nil, Content("width=device-width, initial-scale=1"), Name("viewport")),
			Title(title),
			Link(nil, Href(p.styleSheet), Media("screen"), Rel("stylesheet"), Type("text/css")),
		}),
		Body([]any{
			A(H1(p.title), Href("/")),
			Div(A(displayURL(p.githubURL), Href(p.githubURL)), Style("text-align: right")),
			Hr(nil),
			content,
		}),
	})
}

// ExtBlock renders one extension: anchor link, name, user count and the
// list of archived versions.
func (p *Pages) ExtBlock(ext *Extension) *Node {
	return Div([]any{
		Small(A("#"+ext.ID, Href("/"+ExtPath(ext.ID))), Class("extlink")),
		H2(A(ext.Name, Href(ext.URL)), ID(ext.ID)),
		Small(AddCommas(int64(ext.UserCount))),
		Ul(p.versions(ext.Files)),
	})
}

func (p *Pages) versions(files []File) []*Node {
	items := make([]*Node, 0, len(files))
	for _, f := range files {
		items = append(items, Li([]any{
			A([]any{
				versionName(f.Name),
				" - ",
				Small(" " + SizeOf(float64(f.Size))),
			}, Href(f.StorageURL)),
			Small(A("view source",
				Target("_blank"),
				Rel("noreferrer"),
				Href(p.sourceViewerURL+f.StorageURL),
			)),
		}))
	}
	return items
}

// ListData is the input of a list page.
type ListData struct {
	// Exts are the extensions shown on this page.
	Exts []Extension

	// Page is the 1-based page number; Pages the page count.
	Page  int
	Pages int

	// Stats are archive-wide totals.
	Stats Stats
}

// ListPage renders one page of the extension list.
func (p *Pages) ListPage(data ListData) *Node {
	blocks := make([]*Node, 0, len(data.Exts))
	for i := range data.Exts {
		blocks = append(blocks, p.ExtBlock(&data.Exts[i]))
	}

	return p.Base([]any{
		Div([]any{
			Strong(AddCommas(int64(data.Stats.Extensions))),
			" extensions, ",
			Strong(AddCommas(int64(data.Stats.Files))),
			" versions, ",
			Strong(SizeOf(float64(data.Stats.TotalSize))),
			" stored",
			Br(nil),
			"Last update: " + p.now().Format(time.DateOnly),
		}, Style("text-align: center")),
		Div([]any{
			"Pages:",
			pageLinks(data.Page, data.Pages),
			"(ordered by # of users)",
		}, Style("text-align: center")),
		Hr(nil),
		blocks,
	}, "")
}

func pageLinks(current, pages int) []*Node {
	links := make([]*Node, 0, pages)
	for i := 1; i <= pages; i++ {
		link := A(" "+strconv.Itoa(i)+" ", Href("/"+PageName(i)))
		if i == current {
			link = Strong(link)
		}
		links = append(links, link)
	}
	return links
}

// ExtPage renders the detail page of one extension, ending with its full
// record as JSON.
func (p *Pages) ExtPage(ext *Extension) (*Node, error) {
	record, err := ext.Record()
	if err != nil {
		return nil, err
	}

	return p.Base([]any{
		p.ExtBlock(ext),
		P(NL2BR(ext.FullDescription), Class("description")),
		Hr(nil),
		Pre(record, Class("pprint")),
	}, ext.Name), nil
}

// displayURL drops the scheme for link text.
func displayURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimPrefix(u, "http://")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
