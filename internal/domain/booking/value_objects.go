package booking

import (
	"strings"
)

const (
	maxGuestNameLength = 200
	maxNoteLength      = 1000
)

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return GuestName{}, ErrEmptyGuestName
	}
	if len(value) > maxGuestNameLength {
		return GuestName{}, ErrGuestNameTooLong
	}
	return GuestName{value: value}, nil
}

func (g GuestName) String() string {
	return g.value
}

type Note struct {
	value string
}

// NewNote trims the note and cuts it at the storage limit.
func NewNote(value string) Note {
	value = strings.TrimSpace(value)
	if len(value) > maxNoteLength {
		value = value[:maxNoteLength]
	}
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
