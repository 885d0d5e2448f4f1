package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-tracktune/internal/web"
	webfs "github.com/justestif/go-tracktune/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		recommender, err := newRecommender(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		static, err := webfs.Static()
		if err != nil {
			return fmt.Errorf("creating static filesystem: %w", err)
		}

		mw := web.DefaultMiddlewareConfig()
		mw.RateLimitRequests = cfg.RateLimit.Requests
		mw.RateLimitWindow = cfg.RateLimit.Window
		mw.RateLimitDisabled = cfg.RateLimit.Disabled

		server, err := web.NewServer(web.ServerConfig{
			Addr:        cfg.Addr,
			StaticFS:    static,
			Recommender: recommender,
			Middleware:  mw,
		})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		return server.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default 0.0.0.0:8000)")
	_ = settings.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
