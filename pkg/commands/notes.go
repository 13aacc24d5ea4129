package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/entrhq/assistant/pkg/notes"
)

func registerNoteCommands(r *Registry) {
	for _, cmd := range []*Command{
		{Name: "add-note", Usage: "<content...>", Description: "Add a note", MaxArgs: Unlimited, Notes: addNote},
		{Name: "find-note", Usage: "<keyword>", Description: "Find notes containing a keyword", MaxArgs: Unlimited, Notes: findNotes},
		{Name: "show-notes", Description: "Show all notes", Notes: showAllNotes},
		{Name: "sort-notes", Description: "Show notes ordered by their tags", Notes: sortNotes},
		{Name: "edit-note", Usage: "<id> <content...>", Description: "Replace a note's content", MaxArgs: Unlimited, Notes: editNote},
		{Name: "delete-note", Usage: "<id>", Description: "Delete a note", MaxArgs: 1, Notes: deleteNote},
		{Name: "add-tag", Usage: "<id> <tag>", Description: "Tag a note", MaxArgs: 2, Notes: addTag},
		{Name: "find-by-tag", Usage: "<tag>", Description: "Find notes with a tag", MaxArgs: Unlimited, Notes: findByTag},
	} {
		cmd.Kind = KindNotes
		r.Register(cmd)
	}
}

func parseNoteID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrInvalidID)
	}
	return id, nil
}

func addNote(args []string, book *notes.Book) (string, error) {
	if len(args) == 0 {
		return "", needArguments("Please enter the note content.")
	}
	note, err := notes.NewNote(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note added with ID: %d", book.Add(note)), nil
}

// findNotes searches by the first word only; further words are ignored.
func findNotes(args []string, book *notes.Book) (string, error) {
	if len(args) == 0 {
		return "", needArguments("Please enter a keyword to search for.")
	}

	query := args[0]
	found := book.Find(query)
	if len(found) == 0 {
		return fmt.Sprintf("No notes found containing: '%s'", query), nil
	}
	return fmt.Sprintf("Found %d notes containing '%s':\n%s", len(found), query, notes.Render(notes.Sorted(found))), nil
}

func showAllNotes(_ []string, book *notes.Book) (string, error) {
	return book.String(), nil
}

func sortNotes(_ []string, book *notes.Book) (string, error) {
	if book.Len() == 0 {
		return "No notes saved.", nil
	}
	return "--- Notes by tag ---\n" + notes.Render(book.SortByTag()), nil
}

func editNote(args []string, book *notes.Book) (string, error) {
	if len(args) < 2 {
		return "", needArguments("Please enter the note ID and the new content.")
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	if err := book.Edit(id, strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note ID %d updated successfully.", id), nil
}

func deleteNote(args []string, book *notes.Book) (string, error) {
	if len(args) == 0 {
		return "", needArguments("Please enter the note ID.")
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	if !book.Delete(id) {
		return "", &notes.NotFoundError{ID: id}
	}
	return fmt.Sprintf("Note ID %d deleted successfully.", id), nil
}

func addTag(args []string, book *notes.Book) (string, error) {
	if len(args) < 2 {
		return "", needArguments("Please enter the note ID and a tag.")
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	tag := strings.TrimSpace(args[1])
	if err := book.AddTag(id, tag); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag '%s' added to Note ID %d.", tag, id), nil
}

func findByTag(args []string, book *notes.Book) (string, error) {
	if len(args) == 0 {
		return "", needArguments("Please enter a tag to search for.")
	}

	tag := args[0]
	found := book.FindByTag(tag)
	if len(found) == 0 {
		return fmt.Sprintf("No notes found with tag '%s'.", tag), nil
	}
	return fmt.Sprintf("Found %d notes with tag '%s':\n%s", len(found), tag, notes.Render(notes.Sorted(found))), nil
}
