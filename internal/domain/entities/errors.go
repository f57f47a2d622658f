package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPassword   = errors.New("invalid password")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidToken    = errors.New("invalid token")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis result not found")

	// Assessment errors
	ErrAssessmentNotFound = errors.New("assessment result not found")
	ErrIncompleteAnswers  = errors.New("assessment answers incomplete")
	ErrAnswerOutOfRange   = errors.New("assessment answer out of range")
	ErrNoAnswerRecorded   = errors.New("no answer recorded for current question")
	ErrFlowComplete       = errors.New("assessment flow already complete")

	// Journal errors
	ErrEmptyEntryText = errors.New("journal entry text is empty")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
