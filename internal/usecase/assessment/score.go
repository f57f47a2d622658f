package assessment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// concernThreshold is the answer value at or above which a question is
// quoted in the summary
const concernThreshold = 2

// Score validates a complete answer set and produces the scored
// result. It fails fast on a wrong-length slice or an out-of-range
// answer rather than producing a silently wrong score.
func Score(userID uuid.UUID, answers entities.AssessmentAnswers, completedAt time.Time) (*entities.AssessmentResult, error) {
	if len(answers) != len(Questions) {
		return nil, fmt.Errorf("%w: got %d answers, want %d", entities.ErrIncompleteAnswers, len(answers), len(Questions))
	}

	total := 0
	for i, answer := range answers {
		if answer < 0 || answer > maxAnswerValue {
			return nil, fmt.Errorf("%w: question %d answer %d", entities.ErrAnswerOutOfRange, i+1, answer)
		}
		total += answer
	}

	riskPercentage := float64(total) / float64(MaxScore()) * 100
	riskLevel := entities.RiskLow
	if riskPercentage > 70 {
		riskLevel = entities.RiskHigh
	} else if riskPercentage > 40 {
		riskLevel = entities.RiskModerate
	}

	return &entities.AssessmentResult{
		ID:             uuid.New(),
		UserID:         userID,
		Answers:        answers,
		TotalScore:     total,
		RiskPercentage: riskPercentage,
		RiskLevel:      riskLevel,
		CompletedAt:    completedAt,
	}, nil
}

// Summary renders the assessment as prose for downstream text
// analysis. Answers at the concern threshold or above quote the
// question stem (the text before the question mark) with its score.
func Summary(result *entities.AssessmentResult) string {
	concerns := []string{}
	for i, answer := range result.Answers {
		if answer >= concernThreshold {
			stem := strings.SplitN(Questions[i].Question, "?", 2)[0]
			concerns = append(concerns, fmt.Sprintf("%s - Score: %d", stem, answer))
		}
	}

	return fmt.Sprintf("Mental health assessment completed. Risk level: %s. Key concerns: %s. Total score: %d.",
		result.RiskLevel, strings.Join(concerns, "; "), result.TotalScore)
}
