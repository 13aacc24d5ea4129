package commands

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/logging"
	"github.com/entrhq/assistant/pkg/notes"
)

// Saver persists both containers when the session ends.
type Saver interface {
	Save(book *contacts.AddressBook, notebook *notes.Book) error
}

// Result is what a front end needs after one line was processed.
type Result struct {
	Output string // Text to print verbatim; may be empty
	Exit   bool   // True once the session has ended
}

// Dispatcher routes command lines to their handlers.
type Dispatcher struct {
	registry *Registry
	book     *contacts.AddressBook
	notebook *notes.Book
	saver    Saver
	logger   *logging.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *logging.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithRegistry replaces the default command registry.
func WithRegistry(r *Registry) DispatcherOption {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

// NewDispatcher creates a dispatcher over the given containers. saver is
// called on exit/close.
func NewDispatcher(book *contacts.AddressBook, notebook *notes.Book, saver Saver, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: DefaultRegistry(),
		book:     book,
		notebook: notebook,
		saver:    saver,
		logger:   logging.Discard(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Registry returns the registry used for lookups and completion.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Execute processes one raw command line. It never panics and never returns
// an error: every failure becomes the Output of the Result.
func (d *Dispatcher) Execute(line string) (res Result) {
	name, args := Parse(line)
	if name == "" {
		return Result{}
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("command %q panicked: %v\n%s", name, r, debug.Stack())
			res = Result{Output: fmt.Sprintf("Unexpected error: %v", r)}
		}
	}()

	cmd, ok := d.registry.Get(name)
	if !ok {
		d.logger.Debugf("unknown command %q", name)
		return Result{Output: "Invalid command."}
	}

	if !cmd.accepts(len(args)) {
		d.logger.Debugf("command %q rejected %d argument(s)", name, len(args))
		return Result{Output: msgArguments + "\nUsage: " + strings.TrimSpace(cmd.Name+" "+cmd.Usage)}
	}

	d.logger.Debugf("dispatching %q with %d argument(s)", name, len(args))

	var (
		out string
		err error
	)
	switch cmd.Kind {
	case KindBuiltin:
		return d.builtin(cmd.Name)
	case KindContacts:
		out, err = cmd.Contacts(args, d.book)
	case KindNotes:
		out, err = cmd.Notes(args, d.notebook)
	default:
		err = fmt.Errorf("command %q has unknown kind %d", cmd.Name, cmd.Kind)
	}

	if err != nil {
		msg, known := Present(err)
		if !known {
			d.logger.Errorf("command %q failed: %v", name, err)
		}
		return Result{Output: msg}
	}
	return Result{Output: out}
}

func (d *Dispatcher) builtin(name string) Result {
	switch name {
	case CmdHello:
		return Result{Output: "How can I help you?"}
	case CmdHelp:
		return Result{Output: d.help()}
	case CmdExit, CmdClose:
		if err := d.Save(); err != nil {
			return Result{Output: fmt.Sprintf("Failed to save data: %v\nGoodbye!", err), Exit: true}
		}
		return Result{Output: "Goodbye!", Exit: true}
	}
	return Result{Output: "Invalid command."}
}

// Save persists both containers through the configured Saver.
func (d *Dispatcher) Save() error {
	if d.saver == nil {
		return nil
	}
	if err := d.saver.Save(d.book, d.notebook); err != nil {
		d.logger.Errorf("save failed: %v", err)
		return err
	}
	d.logger.Infof("saved %d contact(s) and %d note(s)", d.book.Len(), d.notebook.Len())
	return nil
}

func (d *Dispatcher) help() string {
	var sb strings.Builder
	sb.WriteString("Available commands:")
	for _, cmd := range d.registry.All() {
		usage := strings.TrimSpace(cmd.Name + " " + cmd.Usage)
		sb.WriteString(fmt.Sprintf("\n  %-36s %s", usage, cmd.Description))
	}
	return sb.String()
}
