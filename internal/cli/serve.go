package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/disksort/pkg/cache"
	"github.com/matzehuels/disksort/pkg/observability"
	"github.com/matzehuels/disksort/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sorting API over HTTP",
		Long: `Serve the sorting API over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /v1/algorithms
  GET  /v1/sort/{algorithm}?lights=k[&format=svg][&trace=true]
  POST /v1/sort/{algorithm}   {"row": "D L D L"}
  GET  /v1/compare?from=1&to=16
  GET  /metrics`,
		Example: `  disksort serve --addr :9000
  curl 'localhost:9000/v1/sort/lawnmower?lights=4'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()
			runner.Keyer = cache.NewScopedKeyer(nil, "api:")

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewPrometheusHooks(reg)
			observability.SetSortHooks(metrics)
			observability.SetCacheHooks(metrics)
			observability.SetHTTPHooks(metrics)
			defer observability.Reset()

			printInfo("Serving on %s", StyleValue.Render(addr))
			printNextStep("Try", "curl 'http://localhost"+portOf(addr)+"/v1/sort/lawnmower?lights=4'")

			return server.New(runner, c.Logger, reg).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// portOf returns the ":port" suffix of addr.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ""
}
