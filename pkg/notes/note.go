// Package notes provides tagged text notes and the note book that numbers them.
package notes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/entrhq/assistant/pkg/fields"
)

// TimestampLayout is how a note's creation time is rendered.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is a piece of free-form text with a set of tags. It has no ID of its
// own; the Book that stores it assigns one.
type Note struct {
	Content   string    // Note content, never blank
	Tags      []string  // Lower-cased, unique, sorted
	CreatedAt time.Time // Creation timestamp
}

// NewNote creates a note created now. Returns an error if validation fails.
func NewNote(content string, tags ...string) (*Note, error) {
	return newNoteAt(content, time.Now(), tags)
}

func newNoteAt(content string, createdAt time.Time, tags []string) (*Note, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	n := &Note{Content: content, CreatedAt: createdAt}
	for _, tag := range tags {
		if err := n.AddTag(tag); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// ValidateContent checks that content is not blank.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fields.Invalid("Note content cannot be empty.")
	}
	return nil
}

// Edit replaces the content. The creation time is left untouched.
func (n *Note) Edit(content string) error {
	if err := ValidateContent(content); err != nil {
		return err
	}
	n.Content = content
	return nil
}

// AddTag adds a tag, normalized to lower case. Adding a tag the note already
// has is a no-op.
func (n *Note) AddTag(tag string) error {
	normalized := normalizeTag(tag)
	if normalized == "" {
		return fields.Invalid("Tag cannot be empty.")
	}
	if n.HasTag(normalized) {
		return nil
	}
	n.Tags = append(n.Tags, normalized)
	sort.Strings(n.Tags)
	return nil
}

// HasTag checks if the note has a specific tag (case-insensitive)
func (n *Note) HasTag(tag string) bool {
	normalized := normalizeTag(tag)
	for _, t := range n.Tags {
		if t == normalized {
			return true
		}
	}
	return false
}

// ContainsText checks if the note content contains the query string (case-insensitive)
func (n *Note) ContainsText(query string) bool {
	return strings.Contains(
		strings.ToLower(n.Content),
		strings.ToLower(query),
	)
}

func (n *Note) String() string {
	tags := ""
	if len(n.Tags) > 0 {
		tags = fmt.Sprintf(" (Tags: %s)", strings.Join(n.Tags, ", "))
	}
	return fmt.Sprintf("[%s] Note: %s%s", n.CreatedAt.Format(TimestampLayout), n.Content, tags)
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
