// Package main provides the assistant: an interactive command-line address
// book and note book that keeps its data between sessions.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/assistant/pkg/commands"
	"github.com/entrhq/assistant/pkg/config"
	"github.com/entrhq/assistant/pkg/executor/cli"
	"github.com/entrhq/assistant/pkg/executor/tui"
	"github.com/entrhq/assistant/pkg/logging"
	"github.com/entrhq/assistant/pkg/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// SIGTERM ends the session and saves; SIGINT is handled by the front end.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if runErr := run(ctx, cfg); runErr != nil && !errors.Is(runErr, context.Canceled) {
		stop()
		log.Fatalf("Application error: %v", runErr)
	}
}

// run executes the main application logic
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.LogDir != "" {
		logging.SetDirectory(cfg.LogDir)
	}
	// On error the logger falls back to stderr and has already said so.
	logger, _ := logging.NewLogger("assistant")
	defer logger.Close()

	if cfg.File != "" {
		logger.Infof("using config file %s", cfg.File)
	}

	store := storage.NewStore(storage.Paths{
		AddressBook: cfg.AddressBookPath,
		NoteBook:    cfg.NoteBookPath,
	}, storage.WithLogger(logger))

	book, notebook, err := store.Load()
	if err != nil {
		var corrupt *storage.CorruptFileError
		if !errors.As(err, &corrupt) {
			return err
		}
		// Start with whatever could be loaded; the bad file is kept aside.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	dispatcher := commands.NewDispatcher(book, notebook, store, commands.WithLogger(logger))

	frontend := resolveFrontend(cfg.Frontend)
	logger.Infof("session %s starting with %s front end", logger.SessionID(), frontend)

	if frontend == config.FrontendTUI {
		return tui.NewExecutor(dispatcher,
			tui.WithPrompt(cfg.Prompt),
			tui.WithLogger(logger),
		).Run(ctx)
	}

	return cli.NewExecutor(dispatcher,
		cli.WithPrompt(cfg.Prompt),
		cli.WithLogger(logger),
	).Run(ctx)
}

// resolveFrontend picks the TUI only when both ends are interactive
// terminals, so piped input keeps working with the line front end.
func resolveFrontend(frontend string) string {
	if frontend != config.FrontendAuto {
		return frontend
	}
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return config.FrontendTUI
	}
	return config.FrontendLine
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
