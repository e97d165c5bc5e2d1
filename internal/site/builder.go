package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/vango-dev/extstats/internal/extstats"
	"github.com/vango-dev/extstats/internal/store"
	"github.com/vango-dev/extstats/pkg/markup"
	"github.com/vango-dev/extstats/pkg/render"
	"golang.org/x/sync/errgroup"
)

// Page kinds, used as render metric labels.
const (
	KindList = "list"
	KindExt  = "ext"
)

// BuilderConfig configures a Builder.
type BuilderConfig struct {
	// Renderer renders page trees. Required.
	Renderer *render.Renderer

	// Store receives the rendered pages. Required.
	Store store.Store

	// Workers is the number of pages rendered concurrently.
	// Default: GOMAXPROCS.
	Workers int

	// Logger for build progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Builder renders a whole archive into a store.
type Builder struct {
	config BuilderConfig
	logger *slog.Logger
}

// Result summarizes a build.
type Result struct {
	ListPages int
	ExtPages  int
	Bytes     int64
	Duration  time.Duration
}

// NewBuilder creates a Builder.
func NewBuilder(config BuilderConfig) *Builder {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		config: config,
		logger: logger.With("component", "site"),
	}
}

// Build writes index.html, 2.html, ... and ext/<id>.html for every
// extension. It stops at the first failure.
func (b *Builder) Build(ctx context.Context, archive *Archive) (Result, error) {
	start := time.Now()
	var (
		res      Result
		written  atomic.Int64
		listDone atomic.Int64
		extDone  atomic.Int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.config.Workers)

	for p := 1; p <= archive.PageCount(); p++ {
		g.Go(func() error {
			node, _ := archive.ListPage(p)
			n, err := b.write(ctx, KindList, extstats.PageName(p), node)
			if err != nil {
				return err
			}
			written.Add(n)
			listDone.Add(1)
			return nil
		})
	}

	for _, id := range archive.IDs() {
		g.Go(func() error {
			node, _, err := archive.ExtPage(id)
			if err != nil {
				return err
			}
			n, err := b.write(ctx, KindExt, extstats.ExtPath(id), node)
			if err != nil {
				return err
			}
			written.Add(n)
			extDone.Add(1)
			return nil
		})
	}

	err := g.Wait()
	res.ListPages = int(listDone.Load())
	res.ExtPages = int(extDone.Load())
	res.Bytes = written.Load()
	res.Duration = time.Since(start)
	if err != nil {
		b.logger.ErrorContext(ctx, "build failed", "error", err)
		return res, err
	}

	b.logger.Info("build complete",
		"list_pages", res.ListPages,
		"ext_pages", res.ExtPages,
		"bytes", res.Bytes,
		"duration", res.Duration,
	)
	return res, nil
}

func (b *Builder) write(ctx context.Context, kind, name string, node *markup.Node) (int64, error) {
	var buf bytes.Buffer
	if err := b.config.Renderer.RenderPage(ctx, &buf, kind, node); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if err := b.config.Store.Put(ctx, name, buf.Bytes()); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	b.logger.Debug("page written", "page", name, "bytes", buf.Len())
	return int64(buf.Len()), nil
}
