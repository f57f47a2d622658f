package assessment

import (
	"errors"
	"testing"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

func TestFlowWalkthrough(t *testing.T) {
	flow := NewFlow()

	if flow.Index() != 0 || flow.Complete() {
		t.Fatalf("fresh flow should start at question 0, incomplete")
	}

	// Advancing without an answer is rejected
	if err := flow.Next(); !errors.Is(err, entities.ErrNoAnswerRecorded) {
		t.Fatalf("expected ErrNoAnswerRecorded, got %v", err)
	}

	for i := range Questions {
		if err := flow.Select(i % 4); err != nil {
			t.Fatalf("question %d: select failed: %v", i, err)
		}
		if err := flow.Next(); err != nil {
			t.Fatalf("question %d: next failed: %v", i, err)
		}
	}

	if !flow.Complete() {
		t.Fatal("flow should be complete after answering every question")
	}

	answers := flow.Answers()
	if len(answers) != len(Questions) {
		t.Fatalf("expected %d answers, got %d", len(Questions), len(answers))
	}
	for i, a := range answers {
		if a != i%4 {
			t.Errorf("answer %d: expected %d, got %d", i, i%4, a)
		}
	}

	// Completed flow rejects further input
	if err := flow.Select(1); !errors.Is(err, entities.ErrFlowComplete) {
		t.Errorf("expected ErrFlowComplete, got %v", err)
	}
	if err := flow.Next(); !errors.Is(err, entities.ErrFlowComplete) {
		t.Errorf("expected ErrFlowComplete, got %v", err)
	}
}

func TestFlowPreviousKeepsAnswer(t *testing.T) {
	flow := NewFlow()

	if err := flow.Select(2); err != nil {
		t.Fatal(err)
	}
	if err := flow.Next(); err != nil {
		t.Fatal(err)
	}

	flow.Previous()
	if flow.Index() != 0 {
		t.Fatalf("expected cursor back at 0, got %d", flow.Index())
	}

	_, value, answered := flow.Current()
	if !answered || value != 2 {
		t.Errorf("expected recorded answer 2, got %d (answered=%v)", value, answered)
	}

	// Previous at the first question is a no-op
	flow.Previous()
	if flow.Index() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", flow.Index())
	}
}

func TestFlowSelectOutOfRange(t *testing.T) {
	flow := NewFlow()
	for _, bad := range []int{-1, 4} {
		if err := flow.Select(bad); !errors.Is(err, entities.ErrAnswerOutOfRange) {
			t.Errorf("value %d: expected ErrAnswerOutOfRange, got %v", bad, err)
		}
	}
}
