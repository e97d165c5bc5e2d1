package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/extstats/internal/config"
	"github.com/vango-dev/extstats/internal/errors"
	"github.com/vango-dev/extstats/internal/extstats"
	"github.com/vango-dev/extstats/internal/site"
	"github.com/vango-dev/extstats/pkg/render"
)

// loadConfig loads the configuration named by --config: a file, a
// directory, or the working directory when empty. Missing files give the
// defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadOrDefault(".")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return config.LoadOrDefault(path)
	}
	return config.LoadFile(path)
}

// loadExtensions reads the extension data file.
func loadExtensions(path string) ([]extstats.Extension, error) {
	if path == "" {
		return nil, errors.New("X001").
			WithDetail("No extension data file given").
			WithSuggestion("Pass --data or set build.data in extstats.json")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("D001").WithDetail(path).Wrap(err)
	}
	defer f.Close()

	exts, err := extstats.LoadExtensions(f)
	switch {
	case errors.Is(err, extstats.ErrNoExtensions):
		return nil, errors.New("D004").WithDetail(path)
	case err != nil:
		return nil, errors.New("D002").WithDetail(path).Wrap(err)
	}
	return exts, nil
}

// loadArchive loads the configuration and data and indexes the archive.
func loadArchive(cfg *config.Config, dataFlag string) (*site.Archive, error) {
	data := dataFlag
	if data == "" {
		data = cfg.DataPath()
	}
	exts, err := loadExtensions(data)
	if err != nil {
		return nil, err
	}

	pages := extstats.NewPages(cfg.Site)
	return site.NewArchive(pages, exts, cfg.Build.PerPage, slog.Default()), nil
}

// newRenderer creates a renderer recording metrics into reg, or none when
// reg is nil.
func newRenderer(reg prometheus.Registerer) *render.Renderer {
	config := render.RendererConfig{Logger: slog.Default()}
	if reg != nil {
		config.Metrics = render.NewMetrics(render.WithRegistry(reg))
	}
	return render.NewRenderer(config)
}

// overrideInt sets *dst when the flag was given a positive value.
func overrideInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
