package notes

import (
	"strings"
	"testing"
)

func TestNewNote(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		tags        []string
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid note",
			content: "Test note",
		},
		{
			name:    "valid note with tags",
			content: "Test note",
			tags:    []string{"Go", "go", "cli"},
		},
		{
			name:        "empty content",
			content:     "",
			expectError: true,
			errorMsg:    "content cannot be empty",
		},
		{
			name:        "whitespace content",
			content:     " \t ",
			expectError: true,
			errorMsg:    "content cannot be empty",
		},
		{
			name:        "blank tag",
			content:     "Valid content",
			tags:        []string{"ok", ""},
			expectError: true,
			errorMsg:    "Tag cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := NewNote(tt.content, tt.tags...)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if note.Content != tt.content {
				t.Errorf("content mismatch: got %q, want %q", note.Content, tt.content)
			}
			if note.CreatedAt.IsZero() {
				t.Error("CreatedAt should be set")
			}
		})
	}
}

func TestNoteTagsAreUniqueAndSorted(t *testing.T) {
	note, err := NewNote("content", "Zeta", "alpha", "ZETA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(note.Tags, ","); got != "alpha,zeta" {
		t.Errorf("tags = %q, want %q", got, "alpha,zeta")
	}
	if !note.HasTag(" ALPHA ") {
		t.Error("HasTag should ignore case and surrounding space")
	}
}

func TestNoteContainsText(t *testing.T) {
	note, _ := NewNote("Remember The Milk")
	if !note.ContainsText("the milk") {
		t.Error("expected case-insensitive match")
	}
	if note.ContainsText("bread") {
		t.Error("unexpected match")
	}
}
