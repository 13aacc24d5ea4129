// Package storage persists the address book and the note book as YAML files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/logging"
	"github.com/entrhq/assistant/pkg/notes"
	"gopkg.in/yaml.v3"
)

// Default file names, relative to the working directory.
const (
	DefaultAddressBookPath = "addressbook.yaml"
	DefaultNoteBookPath    = "notes.yaml"
)

// formatVersion is written to every document.
const formatVersion = "1"

// Paths locates the two data files.
type Paths struct {
	AddressBook string
	NoteBook    string
}

// DefaultPaths returns the file locations used when nothing is configured.
func DefaultPaths() Paths {
	return Paths{
		AddressBook: DefaultAddressBookPath,
		NoteBook:    DefaultNoteBookPath,
	}
}

// CorruptFileError reports a data file that could not be decoded or failed
// validation. The file has been moved to BackupPath.
type CorruptFileError struct {
	Path       string
	BackupPath string
	Err        error
}

func (e *CorruptFileError) Error() string {
	if e.BackupPath == "" {
		return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("corrupt data file %s (moved to %s): %v", e.Path, e.BackupPath, e.Err)
}

func (e *CorruptFileError) Unwrap() error {
	return e.Err
}

// Store reads and writes both containers.
type Store struct {
	paths  Paths
	logger *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates a store over paths. Empty paths fall back to the defaults.
func NewStore(paths Paths, opts ...Option) *Store {
	if paths.AddressBook == "" {
		paths.AddressBook = DefaultAddressBookPath
	}
	if paths.NoteBook == "" {
		paths.NoteBook = DefaultNoteBookPath
	}

	s := &Store{
		paths:  paths,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Paths returns the file locations of the store.
func (s *Store) Paths() Paths {
	return s.paths
}

// Load reads both containers. A missing file yields an empty container.
//
// A corrupt file is moved aside and its container starts empty; the
// containers are still returned together with the *CorruptFileError (joined
// when both files are corrupt). Any other failure returns nil containers.
func (s *Store) Load() (*contacts.AddressBook, *notes.Book, error) {
	var corrupt []error

	book := contacts.NewAddressBook()
	if data, err := s.read(s.paths.AddressBook); err != nil {
		return nil, nil, err
	} else if data != nil {
		loaded, err := decodeAddressBook(data)
		if err != nil {
			corrupt = append(corrupt, s.quarantine(s.paths.AddressBook, err))
		} else {
			book = loaded
		}
	}

	notebook := notes.NewBook()
	if data, err := s.read(s.paths.NoteBook); err != nil {
		return nil, nil, err
	} else if data != nil {
		loaded, err := decodeNoteBook(data)
		if err != nil {
			corrupt = append(corrupt, s.quarantine(s.paths.NoteBook, err))
		} else {
			notebook = loaded
		}
	}

	s.logger.Infof("loaded %d contact(s) from %s and %d note(s) from %s",
		book.Len(), s.paths.AddressBook, notebook.Len(), s.paths.NoteBook)

	return book, notebook, errors.Join(corrupt...)
}

// Save writes both containers. It satisfies commands.Saver.
func (s *Store) Save(book *contacts.AddressBook, notebook *notes.Book) error {
	if err := s.write(s.paths.AddressBook, encodeAddressBook(book)); err != nil {
		return err
	}
	if err := s.write(s.paths.NoteBook, encodeNoteBook(notebook)); err != nil {
		return err
	}
	s.logger.Debugf("saved %s and %s", s.paths.AddressBook, s.paths.NoteBook)
	return nil
}

// read returns nil data when the file does not exist.
func (s *Store) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugf("no data file at %s, starting empty", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// quarantine moves a corrupt file out of the way so the next save does not
// overwrite it.
func (s *Store) quarantine(path string, cause error) error {
	backup := path + ".corrupt"
	cerr := &CorruptFileError{Path: path, BackupPath: backup, Err: cause}
	if err := os.Rename(path, backup); err != nil {
		s.logger.Errorf("failed to move corrupt file %s aside: %v", path, err)
		cerr.BackupPath = ""
	}
	s.logger.Warnf("%v", cerr)
	return cerr
}

func (s *Store) write(path string, doc interface{}) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Create temp file for atomic write
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
