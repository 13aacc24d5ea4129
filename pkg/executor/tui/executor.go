// Package tui provides a full-screen terminal front end for the assistant.
//
// The TUI codebase is split into multiple files:
// - executor.go: Executor implementation and program lifecycle
// - model.go: Model structure and construction
// - update.go: Bubble Tea Update function and key handling
// - view.go: Bubble Tea View function and rendering
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/assistant/pkg/commands"
	"github.com/entrhq/assistant/pkg/logging"
)

// Dispatcher executes command lines and exposes the registry used for
// completion.
type Dispatcher interface {
	Execute(line string) commands.Result
	Registry() *commands.Registry
}

// Executor runs the Bubble Tea program.
type Executor struct {
	dispatcher Dispatcher
	prompt     string
	logger     *logging.Logger
	writer     io.Writer
}

// ExecutorOption is a function that configures an Executor.
type ExecutorOption func(*Executor)

// WithPrompt replaces the default input prompt.
func WithPrompt(prompt string) ExecutorOption {
	return func(e *Executor) {
		if prompt != "" {
			e.prompt = prompt
		}
	}
}

// WithLogger sets the logger for session diagnostics.
func WithLogger(l *logging.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = l
	}
}

// NewExecutor creates a new TUI executor over the given dispatcher.
func NewExecutor(dispatcher Dispatcher, opts ...ExecutorOption) *Executor {
	e := &Executor{
		dispatcher: dispatcher,
		prompt:     defaultPrompt,
		logger:     logging.Discard(),
		writer:     os.Stdout,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run starts the program and blocks until the session ends. If the program
// stops without exit/close (context canceled, program killed) the data is
// still saved.
func (e *Executor) Run(ctx context.Context) error {
	m := newModel(e.dispatcher, e.prompt, e.logger)
	m.copy = clipboard.WriteAll

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, runErr := program.Run()

	if fm, ok := final.(*model); !ok || !fm.exited {
		e.logger.Infof("program stopped without exit command, saving")
		res := e.dispatcher.Execute(commands.CmdExit)
		fmt.Fprintln(e.writer, res.Output)
	} else if fm.lastOutput != "" {
		// The alt screen is gone; leave the farewell on the terminal.
		fmt.Fprintln(e.writer, fm.lastOutput)
	}

	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run TUI program: %w", runErr)
	}
	return nil
}
