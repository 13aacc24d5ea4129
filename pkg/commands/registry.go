// Package commands turns raw command lines into operations on the address
// book and the note book.
//
// Every command is declared once in a Registry together with the resource it
// works on (its Kind), its argument bounds and its handler. The Dispatcher
// parses a line, validates the argument count against the declaration and
// calls the handler with exactly the resource the Kind names.
package commands

import (
	"sort"
	"strings"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/notes"
)

// Kind declares which resource a command's handler receives.
type Kind int

const (
	KindBuiltin  Kind = iota // Handled by the dispatcher itself
	KindContacts             // Receives the address book
	KindNotes                // Receives the note book
)

// ContactHandler runs a command against the address book.
type ContactHandler func(args []string, book *contacts.AddressBook) (string, error)

// NoteHandler runs a command against the note book.
type NoteHandler func(args []string, book *notes.Book) (string, error)

// Unlimited marks a command without an upper argument bound.
const Unlimited = -1

// Command is one registered command.
type Command struct {
	Name        string // Command name as typed
	Usage       string // Argument synopsis shown on errors and in help
	Description string // Short description for help and completion
	Kind        Kind
	MinArgs     int // Minimum number of arguments
	MaxArgs     int // Maximum number of arguments (Unlimited for no bound)

	Contacts ContactHandler // Set when Kind is KindContacts
	Notes    NoteHandler    // Set when Kind is KindNotes
}

// accepts reports whether n arguments are within the declared bounds.
func (c *Command) accepts(n int) bool {
	if n < c.MinArgs {
		return false
	}
	return c.MaxArgs == Unlimited || n <= c.MaxArgs
}

// Registry holds commands by name.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd, replacing any command with the same name.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Get retrieves a command from the registry
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns every command ordered by name.
func (r *Registry) All() []*Command {
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Complete returns the names of all commands starting with text, sorted.
// Completion only applies to the first word, so any text containing
// whitespace yields nothing.
func (r *Registry) Complete(text string) []string {
	if strings.ContainsAny(text, " \t") {
		return nil
	}
	prefix := strings.ToLower(text)
	var out []string
	for _, cmd := range r.All() {
		if strings.HasPrefix(cmd.Name, prefix) {
			out = append(out, cmd.Name)
		}
	}
	return out
}

// Names returns every registered command name, sorted.
func (r *Registry) Names() []string {
	return r.Complete("")
}

// Parse splits a raw line on whitespace. The first token, lower-cased, is the
// command name; the rest are its arguments.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Builtin command names.
const (
	CmdHello = "hello"
	CmdHelp  = "help"
	CmdExit  = "exit"
	CmdClose = "close"
)

// DefaultRegistry returns a registry holding every assistant command.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, cmd := range []*Command{
		{Name: CmdHello, Description: "Greet the assistant", Kind: KindBuiltin},
		{Name: CmdHelp, Description: "List available commands", Kind: KindBuiltin},
		{Name: CmdExit, Description: "Save everything and quit", Kind: KindBuiltin},
		{Name: CmdClose, Description: "Save everything and quit", Kind: KindBuiltin},
	} {
		cmd.MaxArgs = Unlimited
		r.Register(cmd)
	}

	registerContactCommands(r)
	registerNoteCommands(r)
	return r
}
