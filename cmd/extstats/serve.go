package main

import (
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/vango-dev/extstats/internal/errors"
	"github.com/vango-dev/extstats/internal/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		data string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the archive over HTTP",
		Long: `Serve the archive, rendering each page when it is requested.

Prometheus metrics are exposed on /metrics and a health check on /healthz.

Examples:
  extstats serve --data extensions.json
  extstats serve --data extensions.json --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			if addr != "" {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return errors.New("X003").WithDetail("--addr: " + err.Error())
				}
				cfg.Serve.Host = host
				if cfg.Serve.Port, err = strconv.Atoi(port); err != nil {
					return errors.New("X003").WithDetail("--addr: invalid port " + port)
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			archive, err := loadArchive(cfg, data)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srvConfig := server.Config{
				Address:  cfg.ServeAddress(),
				Archive:  archive,
				Renderer: newRenderer(reg),
				Registry: reg,
			}
			if dir := cfg.StaticPath(); dir != "" {
				srvConfig.Static = os.DirFS(dir)
			}
			srv := server.New(srvConfig)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "Serving %d list pages on http://%s", archive.PageCount(), cfg.ServeAddress())
			if err := srv.Run(ctx); err != nil {
				return errors.New("X002").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Extension data JSON file (default from config)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address host:port (default from config)")

	return cmd
}
