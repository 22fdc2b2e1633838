package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planview/pkg/api"
	"github.com/matzehuels/planview/pkg/cache"
	"github.com/matzehuels/planview/pkg/pipeline"
)

const (
	defaultAddr        = ":8080"
	defaultCachePrefix = "planview:v1:"
	envRedisURL        = "PLANVIEW_REDIS_URL"
)

// serveCommand creates the serve command for the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		redisURL    string
		cachePrefix string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Routes:
  GET  /healthz
  POST /v1/office/{top_down|front_elevation}?format=svg&dpi=300
  POST /v1/garden?format=png&title=...

The request body is the config document; its encoding is taken from the
Content-Type header (application/json, application/toml, otherwise YAML).

Rendered artifacts are cached in Redis when --redis-url (or
` + envRedisURL + `) is set, and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisURL == "" {
				redisURL = os.Getenv(envRedisURL)
			}
			ctx := cmd.Context()
			runner, err := c.newServiceRunner(ctx, redisURL, cachePrefix, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving on %s", addr)
			printNextStep("Try", fmt.Sprintf("curl -X POST --data-binary @office.yaml 'http://localhost%s/v1/office/top_down?format=svg'", addr))
			return api.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the shared artifact cache (redis://host:6379/0)")
	cmd.Flags().StringVar(&cachePrefix, "cache-prefix", defaultCachePrefix, "key prefix in the shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// newServiceRunner picks the service cache: Redis when a URL is given,
// otherwise the local file cache.
func (c *CLI) newServiceRunner(ctx context.Context, redisURL, prefix string, noCache bool) (*pipeline.Runner, error) {
	if noCache || redisURL == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.Logger.Info("using redis cache", "prefix", prefix)
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, prefix), c.Logger), nil
}
