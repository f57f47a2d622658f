package assessment

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

func answersOf(value int) entities.AssessmentAnswers {
	answers := make(entities.AssessmentAnswers, len(Questions))
	for i := range answers {
		answers[i] = value
	}
	return answers
}

func TestScoreBounds(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	result, err := Score(userID, answersOf(3), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalScore != 30 {
		t.Errorf("expected total 30, got %d", result.TotalScore)
	}
	if result.RiskPercentage != 100 {
		t.Errorf("expected 100%%, got %v", result.RiskPercentage)
	}
	if result.RiskLevel != entities.RiskHigh {
		t.Errorf("expected High, got %s", result.RiskLevel)
	}

	result, err = Score(userID, answersOf(0), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalScore != 0 || result.RiskPercentage != 0 || result.RiskLevel != entities.RiskLow {
		t.Errorf("expected zero Low result, got %+v", result)
	}
}

func TestScoreTiers(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  entities.RiskLevel
	}{
		{"low band top", 12, entities.RiskLow},           // 40%
		{"moderate band bottom", 13, entities.RiskModerate}, // 43.3%
		{"moderate band top", 21, entities.RiskModerate}, // 70%
		{"high band bottom", 22, entities.RiskHigh},      // 73.3%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Spread the target total over the first questions
			answers := answersOf(0)
			remaining := tt.total
			for i := range answers {
				v := remaining
				if v > maxAnswerValue {
					v = maxAnswerValue
				}
				answers[i] = v
				remaining -= v
			}

			result, err := Score(uuid.New(), answers, time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TotalScore != tt.total {
				t.Fatalf("expected total %d, got %d", tt.total, result.TotalScore)
			}
			if result.RiskLevel != tt.want {
				t.Errorf("total %d: expected %s, got %s", tt.total, tt.want, result.RiskLevel)
			}
		})
	}
}

func TestScoreRejectsIncompleteAnswers(t *testing.T) {
	_, err := Score(uuid.New(), entities.AssessmentAnswers{1, 2, 3}, time.Now())
	if !errors.Is(err, entities.ErrIncompleteAnswers) {
		t.Errorf("expected ErrIncompleteAnswers, got %v", err)
	}
}

func TestScoreRejectsOutOfRangeAnswer(t *testing.T) {
	for _, bad := range []int{-1, 4} {
		answers := answersOf(1)
		answers[5] = bad
		_, err := Score(uuid.New(), answers, time.Now())
		if !errors.Is(err, entities.ErrAnswerOutOfRange) {
			t.Errorf("answer %d: expected ErrAnswerOutOfRange, got %v", bad, err)
		}
	}
}

func TestSummaryQuotesConcerns(t *testing.T) {
	answers := answersOf(0)
	answers[0] = 3
	answers[3] = 2

	result, err := Score(uuid.New(), answers, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := Summary(result)

	if !strings.Contains(summary, "Over the past two weeks, how often have you been bothered by feeling down, depressed, or hopeless - Score: 3") {
		t.Errorf("summary missing first concern: %q", summary)
	}
	if !strings.Contains(summary, "How often do you feel anxious or worried - Score: 2") {
		t.Errorf("summary missing second concern: %q", summary)
	}
	if strings.Contains(summary, "?") {
		t.Errorf("question marks should be stripped from stems: %q", summary)
	}
	if !strings.Contains(summary, "Total score: 5.") {
		t.Errorf("summary missing total: %q", summary)
	}
}

func TestSummaryNoConcerns(t *testing.T) {
	result, err := Score(uuid.New(), answersOf(1), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Mental health assessment completed. Risk level: Low. Key concerns: . Total score: 10."
	if got := Summary(result); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
