package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/tui"
	"github.com/robalobadob/wordscramble/internal/words"
)

func newPlayCommand() *cobra.Command {
	var (
		seed    uint64
		dailyOn bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd.Context())

			// The screen belongs to the game; logs go to LOG_FILE or nowhere.
			var out io.Writer = io.Discard
			if cfg.LogFile != "" {
				f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				out = f
			}
			defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)
			log.Logger = zerolog.New(out).With().Timestamp().Logger()

			var picker words.Picker
			if cmd.Flags().Changed("seed") {
				picker = words.NewSeededPicker(seed)
			}
			engine, _, _, err := buildEngine(cfg, picker)
			if err != nil {
				return err
			}

			mode := game.ModeRandom
			if dailyOn {
				mode = game.ModeDaily
			}
			session, err := engine.NewGame(mode)
			if err != nil {
				return err
			}
			log.Info().Str("session", session.ID).Str("root", session.Root).Msg("game started")
			return tui.Run(cmd.Context(), engine, session)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for root word selection (reproducible games)")
	cmd.Flags().BoolVar(&dailyOn, "daily", false, "Play today's root word")
	return cmd
}
