package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/cli"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		if errors.Is(err, words.ErrWordListUnavailable) {
			// The game is unplayable without root words.
			log.Fatal().Err(err).Msg("failed to load word lists")
		}
		log.Fatal().Err(err).Msg("wordscramble exited")
	}
}
