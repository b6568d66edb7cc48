package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
)

func newServeCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd.Context())
			if port != "" {
				cfg.Port = port
			}

			engine, lists, dp, err := buildEngine(cfg, nil)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.StoreDSN)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer st.Close()

			srv, err := httpserver.New(httpserver.Options{
				Engine:        engine,
				Store:         st,
				Lists:         lists,
				Daily:         dp,
				SessionSecret: cfg.SessionSecret,
				SessionTTL:    cfg.SessionTTL,
				ClientOrigin:  cfg.ClientOrigin,
			})
			if err != nil {
				return err
			}

			if cfg.SessionSecret == "dev_secret_change_me" {
				log.Warn().Msg("SESSION_SECRET not set; using development secret")
			}
			log.Info().Str("port", cfg.Port).Bool("sqlite", cfg.StoreDSN != "").Msg("starting go-server")
			return srv.Start(cmd.Context(), ":"+cfg.Port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}
