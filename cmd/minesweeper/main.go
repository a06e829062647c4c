package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
	mines.Log = logger
	game.Log = logger

	rnd, err := config.NewRand()
	if err != nil {
		logger.WithError(err).Error("failed to read seed")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	session := game.NewSession(os.Stdout, mines.NewRandPicker(rnd))
	status, err := session.Run(ctx, os.Stdin)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		os.Exit(130)
	}
	if err != nil {
		logger.WithFields(logrus.Fields{
			"status": status.String(),
			"error":  err,
		}).Error("session aborted")
		cancel()
		os.Exit(1)
	}
}
