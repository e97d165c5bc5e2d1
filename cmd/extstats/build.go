package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/vango-dev/extstats/internal/config"
	"github.com/vango-dev/extstats/internal/errors"
	"github.com/vango-dev/extstats/internal/extstats"
	"github.com/vango-dev/extstats/internal/site"
	"github.com/vango-dev/extstats/internal/store"
)

type buildOptions struct {
	data     string
	output   string
	bucket   string
	prefix   string
	perPage  int
	workers  int
	endpoint string
}

func buildCmd(flags *globalFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page of the archive",
		Long: `Render the list pages (index.html, 2.html, ...) and one page per
extension (ext/<id>.html) into a directory or an S3 bucket.

Examples:
  extstats build --data extensions.json
  extstats build --data extensions.json --out public
  extstats build --data extensions.json --s3-bucket archive --s3-prefix site/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			return runBuild(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.data, "data", "d", "", "Extension data JSON file (default from config)")
	f.StringVarP(&opts.output, "out", "o", "", "Output directory (default from config)")
	f.StringVar(&opts.bucket, "s3-bucket", "", "Upload pages to this S3 bucket instead of a directory")
	f.StringVar(&opts.prefix, "s3-prefix", "", "Key prefix for S3 uploads")
	f.StringVar(&opts.endpoint, "s3-endpoint", "", "Custom S3 endpoint URL")
	f.IntVar(&opts.perPage, "per-page", 0, "Extensions per list page (default from config)")
	f.IntVar(&opts.workers, "workers", 0, "Pages rendered concurrently (default: number of CPUs)")

	return cmd
}

func runBuild(cmd *cobra.Command, cfg *config.Config, opts *buildOptions) error {
	if opts.output != "" {
		cfg.Build.Output = opts.output
	}
	if opts.bucket != "" {
		cfg.S3.Bucket = opts.bucket
	}
	if opts.prefix != "" {
		cfg.S3.Prefix = opts.prefix
	}
	if opts.endpoint != "" {
		cfg.S3.Endpoint = opts.endpoint
	}
	overrideInt(&cfg.Build.PerPage, opts.perPage)
	if err := cfg.Validate(); err != nil {
		return err
	}

	archive, err := loadArchive(cfg, opts.data)
	if err != nil {
		return err
	}

	sink, target, code, err := openStore(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	info(out, "Building %d list pages and %d extension pages into %s",
		archive.PageCount(), len(archive.IDs()), target)

	builder := site.NewBuilder(site.BuilderConfig{
		Renderer: newRenderer(nil),
		Store:    sink,
		Workers:  opts.workers,
		Logger:   slog.Default(),
	})
	res, err := builder.Build(cmd.Context(), archive)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			warn(out, "Build canceled after %d pages", res.ListPages+res.ExtPages)
		}
		return errors.FromError(err, code)
	}

	stats := archive.Stats()
	success(out, "Built %d pages (%s) in %s",
		res.ListPages+res.ExtPages, extstats.SizeOf(float64(res.Bytes)), res.Duration.Round(time.Millisecond))
	info(out, "%s extensions, %s versions, %s stored",
		extstats.AddCommas(int64(stats.Extensions)),
		extstats.AddCommas(int64(stats.Files)),
		extstats.SizeOf(float64(stats.TotalSize)))
	return nil
}

// openStore returns the configured page sink, a description of it and the
// error code for write failures.
func openStore(cfg *config.Config) (store.Store, string, string, error) {
	if cfg.S3.Bucket != "" {
		client := store.NewS3Client(cfg.S3)
		return store.NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix),
			"s3://" + cfg.S3.Bucket + "/" + cfg.S3.Prefix, "S002", nil
	}

	dir := cfg.OutputPath()
	s, err := store.NewDirStore(dir)
	if err != nil {
		return nil, "", "", errors.New("S001").WithDetail(dir).Wrap(err)
	}
	return s, dir, "S001", nil
}
