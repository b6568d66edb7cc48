// Package cli provides the wordscramble command line: "serve" runs the HTTP
// API, "play" runs the game in the terminal.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wordscramble",
		Short:   "Word Scramble - make words from the letters of a root word",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.Level())
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newPlayCommand())
	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	cfg, err := config.Parse()
	if err != nil {
		return &config.Config{Language: words.DefaultLanguage}
	}
	return cfg
}

// buildEngine loads the word lists and wires the game engine.
// A missing root-word list comes back wrapping words.ErrWordListUnavailable.
func buildEngine(cfg *config.Config, picker words.Picker) (*game.Engine, *words.Lists, *daily.Picker, error) {
	lists, err := words.Load(cfg.WordOptions())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load word lists: %w", err)
	}
	roots, dict := lists.Stats()
	log.Info().Int("roots", roots).Int("dictionary", dict).Str("language", lists.Language).Msg("word lists loaded")

	dp := daily.NewPicker(cfg.DailySalt)
	engine := game.NewEngine(game.Config{
		Roots:       lists.Roots,
		Picker:      picker,
		DailyPicker: dp,
		Speller:     lists.Dictionary,
		Language:    lists.Language,
	})
	return engine, lists, dp, nil
}
