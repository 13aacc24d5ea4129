package notes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("note not found")

// NotFoundError reports a note ID with no note behind it.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Note with ID %d not found.", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Entry pairs a note with the ID it is stored under.
type Entry struct {
	ID   int
	Note *Note
}

// Book stores notes under auto-incrementing integer IDs starting at 1.
// An ID is never handed out twice, even after its note is deleted.
type Book struct {
	notes  map[int]*Note
	nextID int
}

// NewBook creates an empty note book.
func NewBook() *Book {
	return &Book{
		notes:  make(map[int]*Note),
		nextID: 1,
	}
}

// Add stores note under the next free ID and returns that ID.
func (b *Book) Add(note *Note) int {
	id := b.nextID
	b.notes[id] = note
	b.nextID++
	return id
}

// Get retrieves a note by ID
func (b *Book) Get(id int) (*Note, bool) {
	note, ok := b.notes[id]
	return note, ok
}

// Edit replaces the content of the note stored under id.
func (b *Book) Edit(id int, content string) error {
	note, ok := b.notes[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	return note.Edit(content)
}

// Delete removes a note and reports whether it existed.
func (b *Book) Delete(id int) bool {
	if _, ok := b.notes[id]; !ok {
		return false
	}
	delete(b.notes, id)
	return true
}

// AddTag attaches tag to the note stored under id.
func (b *Book) AddTag(id int, tag string) error {
	note, ok := b.notes[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	return note.AddTag(tag)
}

// Find returns the notes whose content contains query, ignoring case.
func (b *Book) Find(query string) map[int]*Note {
	found := make(map[int]*Note)
	for id, note := range b.notes {
		if note.ContainsText(query) {
			found[id] = note
		}
	}
	return found
}

// FindByTag returns the notes carrying tag, ignoring case.
func (b *Book) FindByTag(tag string) map[int]*Note {
	found := make(map[int]*Note)
	for id, note := range b.notes {
		if note.HasTag(tag) {
			found[id] = note
		}
	}
	return found
}

// Entries returns every note ordered by ID.
func (b *Book) Entries() []Entry {
	return Sorted(b.notes)
}

// SortByTag orders notes by tag count (most first), then by their
// alphabetically smallest tag, then by ID. Untagged notes sort by "".
func (b *Book) SortByTag() []Entry {
	entries := b.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		a, c := entries[i].Note, entries[j].Note
		if len(a.Tags) != len(c.Tags) {
			return len(a.Tags) > len(c.Tags)
		}
		if firstTag(a) != firstTag(c) {
			return firstTag(a) < firstTag(c)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

func firstTag(n *Note) string {
	if len(n.Tags) == 0 {
		return ""
	}
	return n.Tags[0]
}

// Len returns the number of stored notes.
func (b *Book) Len() int {
	return len(b.notes)
}

// NextID returns the ID the next added note will get.
func (b *Book) NextID() int {
	return b.nextID
}

// Restore rebuilds a book from persisted notes. The ID counter is derived
// from the highest ID present, so a stale stored counter cannot cause reuse.
func Restore(entries []Entry) *Book {
	b := NewBook()
	for _, e := range entries {
		b.notes[e.ID] = e.Note
		if e.ID >= b.nextID {
			b.nextID = e.ID + 1
		}
	}
	return b
}

// RestoreNote rebuilds a note read from storage, revalidating its content
// and tags but keeping its original creation time.
func RestoreNote(content string, createdAt time.Time, tags []string) (*Note, error) {
	return newNoteAt(content, createdAt, tags)
}

func (b *Book) String() string {
	if len(b.notes) == 0 {
		return "No notes saved."
	}
	return "--- Note Book ---\n" + Render(b.Entries())
}

// Sorted turns a search result into entries ordered by ID.
func Sorted(found map[int]*Note) []Entry {
	entries := make([]Entry, 0, len(found))
	for id, note := range found {
		entries = append(entries, Entry{ID: id, Note: note})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Render prints one "ID n: <note>" line per entry, in the given order.
func Render(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("ID %d: %s", e.ID, e.Note)
	}
	return strings.Join(lines, "\n")
}
