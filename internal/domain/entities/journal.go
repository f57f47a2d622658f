package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JournalEntryType discriminates the text/voice entry variants
type JournalEntryType string

const (
	JournalEntryText  JournalEntryType = "text"
	JournalEntryVoice JournalEntryType = "voice"
)

// JournalEntry is one saved text entry or voice note. Entries are
// append-only within a user's history: never mutated or individually
// deleted, only bulk-cleared.
type JournalEntry struct {
	ID     uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type   JournalEntryType `json:"type" gorm:"type:varchar(10);not null"`
	Title  string           `json:"title" gorm:"type:varchar(255);not null"`

	// Text entries
	Text     string         `json:"text,omitempty" gorm:"type:text"`
	Mood     string         `json:"mood,omitempty" gorm:"type:varchar(20)"`
	Analysis datatypes.JSON `json:"analysis,omitempty" gorm:"type:jsonb"`

	// Voice notes carry a display duration ("mm:ss"), not audio
	Duration string `json:"duration,omitempty" gorm:"type:varchar(10)"`

	CreatedAt time.Time `json:"date" gorm:"autoCreateTime"`
}

// TableName specifies the table name for JournalEntry
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// NewTextEntry creates a text journal entry with the default title
func NewTextEntry(userID uuid.UUID, title, text, mood string) *JournalEntry {
	if title == "" {
		title = "Untitled Entry"
	}
	return &JournalEntry{
		ID:     uuid.New(),
		UserID: userID,
		Type:   JournalEntryText,
		Title:  title,
		Text:   text,
		Mood:   mood,
	}
}

// NewVoiceNote creates a voice note entry with the default title
func NewVoiceNote(userID uuid.UUID, title, duration string) *JournalEntry {
	if title == "" {
		title = "Voice Note"
	}
	return &JournalEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     JournalEntryVoice,
		Title:    title,
		Duration: duration,
	}
}
