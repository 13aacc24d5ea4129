// Package cli provides the line-oriented front end of the assistant.
//
// Example usage:
//
//	store := storage.NewStore(storage.DefaultPaths())
//	book, notebook, _ := store.Load()
//	dispatcher := commands.NewDispatcher(book, notebook, store)
//
//	if err := cli.NewExecutor(dispatcher).Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/entrhq/assistant/pkg/commands"
	"github.com/entrhq/assistant/pkg/logging"
)

const (
	welcomeMessage   = "Welcome to the assistant bot!"
	defaultPrompt    = "Enter a command: "
	interruptMessage = "Type 'exit' or 'close' to quit."
)

// Dispatcher executes one command line.
type Dispatcher interface {
	Execute(line string) commands.Result
}

// Executor runs the read-dispatch-print loop on a terminal or any
// reader/writer pair.
type Executor struct {
	dispatcher Dispatcher
	reader     io.Reader
	writer     io.Writer
	prompt     string
	logger     *logging.Logger

	// interrupts overrides os.Interrupt delivery, mainly for tests.
	interrupts <-chan os.Signal
}

// ExecutorOption is a function that configures an Executor.
type ExecutorOption func(*Executor)

// WithReader sets a custom input reader (default is os.Stdin).
func WithReader(r io.Reader) ExecutorOption {
	return func(e *Executor) {
		e.reader = r
	}
}

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.writer = w
	}
}

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

// WithInterrupts makes the executor treat values received on ch as Ctrl+C
// instead of subscribing to os.Interrupt.
func WithInterrupts(ch <-chan os.Signal) ExecutorOption {
	return func(e *Executor) {
		e.interrupts = ch
	}
}

// NewExecutor creates a new CLI executor over the given dispatcher.
func NewExecutor(dispatcher Dispatcher, opts ...ExecutorOption) *Executor {
	e := &Executor{
		dispatcher: dispatcher,
		reader:     os.Stdin,
		writer:     os.Stdout,
		prompt:     defaultPrompt,
		logger:     logging.Discard(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

type inputLine struct {
	text string
	err  error
}

// Run starts the loop. It returns nil once the session ends through
// exit/close or end of input, and ctx.Err() if ctx is canceled first.
// Every way out of the loop saves the data.
func (e *Executor) Run(ctx context.Context) error {
	interrupts := e.interrupts
	if interrupts == nil {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		defer signal.Stop(sig)
		interrupts = sig
	}

	// Stops the reader once the loop is done with it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	go e.readLines(ctx, lines)

	fmt.Fprintln(e.writer, welcomeMessage)
	fmt.Fprint(e.writer, e.prompt)

	for {
		select {
		case <-ctx.Done():
			e.logger.Infof("context canceled, ending session")
			e.finish()
			return ctx.Err()

		case <-interrupts:
			e.logger.Debugf("interrupt received")
			fmt.Fprintln(e.writer)
			fmt.Fprintln(e.writer, interruptMessage)
			fmt.Fprint(e.writer, e.prompt)

		case in := <-lines:
			if in.text != "" {
				if e.handle(in.text) {
					return nil
				}
			}
			if in.err != nil {
				if in.err != io.EOF {
					e.logger.Errorf("failed to read input: %v", in.err)
				}
				fmt.Fprintln(e.writer)
				e.finish()
				if in.err != io.EOF {
					return fmt.Errorf("failed to read input: %w", in.err)
				}
				return nil
			}
			fmt.Fprint(e.writer, e.prompt)
		}
	}
}

// handle executes one line and reports whether the session ended.
func (e *Executor) handle(line string) bool {
	res := e.dispatcher.Execute(strings.TrimSpace(line))
	if res.Output != "" {
		fmt.Fprintln(e.writer, res.Output)
	}
	return res.Exit
}

// finish ends the session the same way the exit command does.
func (e *Executor) finish() {
	e.handle(commands.CmdExit)
}

// readLines feeds lines to out until the reader fails. The final value
// carries the error, together with any unterminated last line.
func (e *Executor) readLines(ctx context.Context, out chan<- inputLine) {
	reader := bufio.NewReader(e.reader)
	for {
		text, err := reader.ReadString('\n')
		in := inputLine{text: strings.TrimRight(text, "\r\n"), err: err}

		select {
		case out <- in:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}
