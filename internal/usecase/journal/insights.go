package journal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
)

// InsightsReport is the aggregated journal overview
type InsightsReport struct {
	TotalEntries      int    `json:"totalEntries"`
	TotalVoiceNotes   int    `json:"totalVoiceNotes"`
	StreakDays        int    `json:"streakDays"`
	CommonMood        string `json:"commonMood,omitempty"`
	ReflectionInsight string `json:"reflectionInsight,omitempty"`
}

// BuildInsights aggregates counts, the writing streak, and the latest
// text-analysis readout
func BuildInsights(entries []entities.JournalEntry) *InsightsReport {
	report := &InsightsReport{
		StreakDays: Streak(entries, time.Now()),
	}

	var latestAnalyzed *entities.JournalEntry
	for i := range entries {
		switch entries[i].Type {
		case entities.JournalEntryText:
			report.TotalEntries++
			if len(entries[i].Analysis) > 0 && latestAnalyzed == nil {
				// Entries arrive newest first
				latestAnalyzed = &entries[i]
			}
		case entities.JournalEntryVoice:
			report.TotalVoiceNotes++
		}
	}

	if latestAnalyzed != nil {
		var ta moodapi.TextAnalysis
		if err := json.Unmarshal(latestAnalyzed.Analysis, &ta); err == nil {
			sentiment := ta.SentimentLabel()
			if sentiment == "" {
				sentiment = "Neutral"
			}
			report.CommonMood = fmt.Sprintf("Based on recent analysis: %s", sentiment)
			if risk := ta.RiskLabel(); risk != "" {
				report.ReflectionInsight = fmt.Sprintf("Recent analysis indicates %s risk level.", strings.ToLower(risk))
			}
		}
	}

	return report
}

// Streak counts consecutive calendar days with at least one entry,
// ending today. A day without an entry breaks the streak immediately,
// so no entry today means zero.
func Streak(entries []entities.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Format("2006-01-02")] = true
	}

	streak := 0
	day := now
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
