package domain

// Note is a free-text note with no relationships to other records
type Note struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// NewNote creates a note stamped with the current time
func NewNote(content string) Note {
	return Note{
		ID:      NewID(),
		Content: content,
		Date:    Now(),
	}
}
