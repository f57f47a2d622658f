package analysis

import (
	"strings"
	"testing"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

func TestScoreTranscriptEmpty(t *testing.T) {
	for _, transcript := range []string{"", "   ", "\n\t"} {
		report := ScoreTranscript(transcript)
		if report.RiskScore != 0 {
			t.Errorf("transcript %q: expected score 0, got %v", transcript, report.RiskScore)
		}
		if report.RiskLevel != entities.RiskLow {
			t.Errorf("transcript %q: expected Low, got %s", transcript, report.RiskLevel)
		}
		if report.Analysis != "No text to analyze" {
			t.Errorf("transcript %q: unexpected analysis %q", transcript, report.Analysis)
		}
		if report.WordCount != 0 {
			t.Errorf("transcript %q: expected word count 0, got %d", transcript, report.WordCount)
		}
	}
}

func TestScoreTranscriptTiers(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantScore  float64
		wantLevel  entities.RiskLevel
	}{
		{
			name:       "all depressive",
			transcript: "sad hopeless worthless empty",
			wantScore:  1,
			wantLevel:  entities.RiskHigh,
		},
		{
			name:       "all positive",
			transcript: "happy grateful hopeful excited",
			wantScore:  0,
			wantLevel:  entities.RiskLow,
		},
		{
			// 3 depressive of 6 words: 0.5*3 = 1.5, clamped to 1
			name:       "clamped at one",
			transcript: "I feel sad lonely and hopeless",
			wantScore:  1,
			wantLevel:  entities.RiskHigh,
		},
		{
			// 1 depressive of 6: 1/6*3 = 0.5
			name:       "moderate band",
			transcript: "today I am feeling quite tired",
			wantScore:  0.5,
			wantLevel:  entities.RiskModerate,
		},
		{
			// 1 dep, 1 pos of 12: 0.25 - 0.125 = 0.125, rounds to 0.13
			name:       "mixed leans low",
			transcript: "I was sad yesterday but I am happy now with my friends",
			wantScore:  0.13,
			wantLevel:  entities.RiskLow,
		},
		{
			name:       "neutral text",
			transcript: "the meeting starts at nine tomorrow morning",
			wantScore:  0,
			wantLevel:  entities.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ScoreTranscript(tt.transcript)
			if report.RiskScore != tt.wantScore {
				t.Errorf("expected score %v, got %v", tt.wantScore, report.RiskScore)
			}
			if report.RiskLevel != tt.wantLevel {
				t.Errorf("expected level %s, got %s", tt.wantLevel, report.RiskLevel)
			}
		})
	}
}

func TestScoreTranscriptSubstringMatching(t *testing.T) {
	// "tiredness" contains "tired", "unhappy" contains "happy"
	report := ScoreTranscript("tiredness unhappy")
	if len(report.DepressiveWords) != 1 || report.DepressiveWords[0] != "tiredness" {
		t.Errorf("expected depressive match on tiredness, got %v", report.DepressiveWords)
	}
	if len(report.PositiveWords) != 1 || report.PositiveWords[0] != "unhappy" {
		t.Errorf("expected positive match on unhappy, got %v", report.PositiveWords)
	}
}

func TestScoreTranscriptIndicators(t *testing.T) {
	report := ScoreTranscript("sad but hopeful")
	wantDep := "Depressive language detected (1 instances)"
	wantPos := "Positive language detected (1 instances)"

	if len(report.Indicators) != 3 {
		t.Fatalf("expected 3 indicators, got %v", report.Indicators)
	}
	if report.Indicators[0] != wantDep {
		t.Errorf("expected %q, got %q", wantDep, report.Indicators[0])
	}
	if report.Indicators[1] != wantPos {
		t.Errorf("expected %q, got %q", wantPos, report.Indicators[1])
	}
	if report.Indicators[2] != "Limited speech sample" {
		t.Errorf("expected limited sample indicator, got %q", report.Indicators[2])
	}
}

func TestScoreTranscriptLongSampleHasNoLimitedIndicator(t *testing.T) {
	transcript := strings.Repeat("word ", 10)
	report := ScoreTranscript(transcript)
	for _, ind := range report.Indicators {
		if ind == "Limited speech sample" {
			t.Errorf("did not expect limited sample indicator for %d words", report.WordCount)
		}
	}
}

func TestScoreTranscriptAnalysisString(t *testing.T) {
	// 1 dep of 6 words: score 0.5
	report := ScoreTranscript("today I am feeling quite tired")
	want := "Risk Level: Moderate (Score: 50%)"
	if report.Analysis != want {
		t.Errorf("expected %q, got %q", want, report.Analysis)
	}
}
