package assessment

import (
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// Flow walks a user through the question bank one question at a time.
// Answers are positional; revisiting a question keeps the earlier
// answer until it is overwritten.
type Flow struct {
	index    int
	answers  []int
	answered []bool
	complete bool
}

// NewFlow starts a fresh walkthrough at the first question
func NewFlow() *Flow {
	return &Flow{
		answers:  make([]int, len(Questions)),
		answered: make([]bool, len(Questions)),
	}
}

// Current returns the question at the cursor and whether an answer was
// already recorded for it (with its value)
func (f *Flow) Current() (Question, int, bool) {
	q := Questions[f.index]
	if f.answered[f.index] {
		return q, f.answers[f.index], true
	}
	return q, 0, false
}

// Index returns the zero-based cursor position
func (f *Flow) Index() int {
	return f.index
}

// Complete reports whether every question was answered and the flow
// advanced past the last one
func (f *Flow) Complete() bool {
	return f.complete
}

// Select records an answer for the current question
func (f *Flow) Select(value int) error {
	if f.complete {
		return entities.ErrFlowComplete
	}
	if value < 0 || value > maxAnswerValue {
		return entities.ErrAnswerOutOfRange
	}
	f.answers[f.index] = value
	f.answered[f.index] = true
	return nil
}

// Next advances the cursor. Advancing requires an answer on the
// current question; advancing past the last question completes the
// flow.
func (f *Flow) Next() error {
	if f.complete {
		return entities.ErrFlowComplete
	}
	if !f.answered[f.index] {
		return entities.ErrNoAnswerRecorded
	}
	if f.index < len(Questions)-1 {
		f.index++
		return nil
	}
	f.complete = true
	return nil
}

// Previous moves the cursor back one question; at the first question
// it is a no-op
func (f *Flow) Previous() {
	if f.complete || f.index == 0 {
		return
	}
	f.index--
}

// Answers returns the recorded answer set. Valid for scoring only
// after Complete reports true.
func (f *Flow) Answers() entities.AssessmentAnswers {
	out := make(entities.AssessmentAnswers, len(f.answers))
	copy(out, f.answers)
	return out
}
