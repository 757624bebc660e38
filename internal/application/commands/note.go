package commands

import (
	"context"
	"fmt"

	"bakerspal/internal/application"
	"bakerspal/internal/domain"
	"bakerspal/internal/state"
)

// AddNoteResult contains the result of adding a note
type AddNoteResult struct {
	Note    domain.Note
	Message string
}

// AddNoteCommand adds a free-form note
type AddNoteCommand struct {
	tracker *state.Tracker
	Content string
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(tracker *state.Tracker, content string) *AddNoteCommand {
	return &AddNoteCommand{
		tracker: tracker,
		Content: content,
	}
}

// Validate checks if the add operation is valid
func (c *AddNoteCommand) Validate() error {
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*AddNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note := domain.NewNote(c.Content)
	// Newest first, matching how the notes view lists them.
	c.tracker.ReplaceNotes(append([]domain.Note{note}, c.tracker.Notes()...))

	return &AddNoteResult{
		Note:    note,
		Message: "Added note",
	}, nil
}

// DeleteNoteResult contains the result of deleting a note
type DeleteNoteResult struct {
	Message string
}

// DeleteNoteCommand removes a note
type DeleteNoteCommand struct {
	tracker *state.Tracker
	NoteID  string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(tracker *state.Tracker, noteID string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		tracker: tracker,
		NoteID:  noteID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	return application.ValidateRequired("noteID", c.NoteID)
}

// Execute runs the delete note command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*DeleteNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	notes := c.tracker.Notes()
	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == c.NoteID {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return nil, fmt.Errorf("note %s: %w", c.NoteID, application.ErrNotFound)
	}

	c.tracker.ReplaceNotes(kept)
	return &DeleteNoteResult{
		Message: "Deleted note",
	}, nil
}
