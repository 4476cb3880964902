package cli

import (
	"github.com/spf13/cobra"

	"github.com/spriteops/asejson/internal/server"
)

// serveCommand creates the serve command which runs the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dir     string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sprite-sheet HTTP service",
		Long: `Run the sprite-sheet HTTP service.

Endpoints:
  GET  /healthz            liveness probe
  POST /v1/validate        decode and lint the request body
  POST /v1/canonical       canonical encoding of the request body
  GET  /v1/sheets/{name}   canonical encoding of a file under --dir

Defaults come from ~/.config/asejson/config.toml ([serve] section);
flags override the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Serve.Addr
			}
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Serve.Dir
			}
			if !cmd.Flags().Changed("no-cache") {
				noCache = cfg.Serve.NoCache
			}

			store, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(server.Config{
				Dir:    dir,
				Cache:  store,
				Logger: c.Logger,
			})
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dir, "dir", "", "directory served by /v1/sheets (disabled if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the canonical-encoding cache")
	return cmd
}
