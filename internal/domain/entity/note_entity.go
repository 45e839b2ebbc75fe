package entity

import "time"

// DefaultTag is applied to notes created without a tag.
const DefaultTag = "General"

// NoteID identifies a note.
type NoteID string

func (id NoteID) String() string { return string(id) }

// Note is a text record owned by exactly one User. OwnerID is fixed at creation.
type Note struct {
	ID          NoteID    `json:"_id"`
	OwnerID     UserID    `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"date"`
}

// OwnedBy reports whether the note belongs to the given user.
func (n *Note) OwnedBy(id UserID) bool {
	return n.OwnerID == id
}
