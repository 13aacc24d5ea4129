package storage

import (
	"fmt"
	"time"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/notes"
	"gopkg.in/yaml.v3"
)

type addressBookDocument struct {
	Version  string           `yaml:"version"`
	Contacts []contactDocument `yaml:"contacts"`
}

type contactDocument struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"`
	Email    string   `yaml:"email,omitempty"`
	Address  string   `yaml:"address,omitempty"`
}

type noteBookDocument struct {
	Version string         `yaml:"version"`
	NextID  int            `yaml:"next_id"`
	Notes   []noteDocument `yaml:"notes"`
}

type noteDocument struct {
	ID        int      `yaml:"id"`
	Content   string   `yaml:"content"`
	Tags      []string `yaml:"tags,omitempty"`
	CreatedAt string   `yaml:"created_at"`
}

func encodeAddressBook(book *contacts.AddressBook) addressBookDocument {
	doc := addressBookDocument{Version: formatVersion, Contacts: []contactDocument{}}
	for _, r := range book.Records() {
		c := contactDocument{Name: r.Name.String()}
		for _, p := range r.Phones {
			c.Phones = append(c.Phones, p.String())
		}
		if r.Birthday != nil {
			c.Birthday = r.Birthday.String()
		}
		if r.Email != nil {
			c.Email = r.Email.String()
		}
		if r.Address != nil {
			c.Address = r.Address.String()
		}
		doc.Contacts = append(doc.Contacts, c)
	}
	return doc
}

// decodeAddressBook parses data and revalidates every field.
func decodeAddressBook(data []byte) (*contacts.AddressBook, error) {
	var doc addressBookDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode address book: %w", err)
	}

	book := contacts.NewAddressBook()
	for i, c := range doc.Contacts {
		record, err := decodeContact(c)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i+1, err)
		}
		if _, exists := book.Find(record.Name.String()); exists {
			return nil, fmt.Errorf("contact %d: duplicate name %q", i+1, record.Name)
		}
		book.Add(record)
	}
	return book, nil
}

func decodeContact(c contactDocument) (*contacts.Record, error) {
	record, err := contacts.NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if err := record.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := record.SetBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	if c.Email != "" {
		if err := record.SetEmail(c.Email); err != nil {
			return nil, err
		}
	}
	if c.Address != "" {
		if err := record.SetAddress(c.Address); err != nil {
			return nil, err
		}
	}
	return record, nil
}

func encodeNoteBook(book *notes.Book) noteBookDocument {
	doc := noteBookDocument{Version: formatVersion, NextID: book.NextID(), Notes: []noteDocument{}}
	for _, e := range book.Entries() {
		doc.Notes = append(doc.Notes, noteDocument{
			ID:        e.ID,
			Content:   e.Note.Content,
			Tags:      e.Note.Tags,
			CreatedAt: e.Note.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return doc
}

// decodeNoteBook parses data and revalidates every note. The stored next_id
// is informational only; the counter is rebuilt from the highest ID.
func decodeNoteBook(data []byte) (*notes.Book, error) {
	var doc noteBookDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode note book: %w", err)
	}

	seen := make(map[int]bool, len(doc.Notes))
	entries := make([]notes.Entry, 0, len(doc.Notes))
	for _, n := range doc.Notes {
		if n.ID < 1 {
			return nil, fmt.Errorf("note has invalid ID %d", n.ID)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("duplicate note ID %d", n.ID)
		}
		seen[n.ID] = true

		createdAt, err := time.Parse(time.RFC3339Nano, n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %d: bad created_at: %w", n.ID, err)
		}
		note, err := notes.RestoreNote(n.Content, createdAt.Local(), n.Tags)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", n.ID, err)
		}
		entries = append(entries, notes.Entry{ID: n.ID, Note: note})
	}

	return notes.Restore(entries), nil
}
