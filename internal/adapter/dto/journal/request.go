package journal

// CreateEntryRequest represents the request to save a text entry
type CreateEntryRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
	Text  string `json:"text" validate:"required"`
	Mood  string `json:"mood" validate:"omitempty,max=20"`
}

// CreateVoiceNoteRequest represents the request to save a voice note
type CreateVoiceNoteRequest struct {
	Title    string `json:"title" validate:"omitempty,max=255"`
	Duration string `json:"duration" validate:"omitempty,max=10"`
}
