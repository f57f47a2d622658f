package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// Fixed keyword vocabularies for the transcript heuristic. Matching is
// substring-based (see ScoreTranscript), so inflected forms like
// "sadly" or "tiredness" also count.
var depressiveKeywords = []string{
	"sad", "depressed", "hopeless", "tired", "exhausted", "worthless",
	"empty", "anxious", "worried", "lonely", "isolated", "helpless",
	"overwhelmed", "stressed", "pain", "hurt", "suffering", "difficult",
}

var positiveKeywords = []string{
	"happy", "excited", "motivated", "energetic", "confident",
	"hopeful", "grateful", "joyful", "optimistic", "content",
	"pleased", "satisfied", "accomplished", "successful", "good",
}

// limitedSampleThreshold is the word count below which a transcript is
// flagged as too short for a reliable reading.
const limitedSampleThreshold = 10

// KeywordRiskReport is the output of the transcript keyword heuristic
type KeywordRiskReport struct {
	RiskScore       float64            `json:"riskScore"`
	RiskLevel       entities.RiskLevel `json:"riskLevel"`
	Indicators      []string           `json:"indicators"`
	WordCount       int                `json:"wordCount"`
	DepressiveWords []string           `json:"depressiveWords"`
	PositiveWords   []string           `json:"positiveWords"`
	Analysis        string             `json:"analysis"`
}

// ScoreTranscript runs the weighted keyword-ratio heuristic over a
// transcript. Tokens are whitespace-split and lowercased; a token
// matches a category when it contains any of that category's keywords
// as a substring. This deliberately matches inflected forms and, as a
// known consequence, unrelated words that happen to embed a keyword.
//
// riskScore = clamp(depressiveRatio*3 - positiveRatio*1.5, 0, 1),
// rounded to two decimals. It never fails: an empty transcript yields
// the zero-score Low result.
func ScoreTranscript(transcript string) KeywordRiskReport {
	words := strings.Fields(strings.ToLower(transcript))
	totalWords := len(words)

	if totalWords == 0 {
		return KeywordRiskReport{
			RiskScore:       0,
			RiskLevel:       entities.RiskLow,
			Indicators:      []string{},
			WordCount:       0,
			DepressiveWords: []string{},
			PositiveWords:   []string{},
			Analysis:        "No text to analyze",
		}
	}

	depressiveMatches := matchWords(words, depressiveKeywords)
	positiveMatches := matchWords(words, positiveKeywords)

	depressiveCount := len(depressiveMatches)
	positiveCount := len(positiveMatches)

	depressiveRatio := float64(depressiveCount) / float64(totalWords)
	positiveRatio := float64(positiveCount) / float64(totalWords)

	riskScore := depressiveRatio*3 - positiveRatio*1.5
	riskScore = math.Max(0, math.Min(1, riskScore))

	riskLevel := entities.RiskLow
	if riskScore > 0.7 {
		riskLevel = entities.RiskHigh
	} else if riskScore > 0.4 {
		riskLevel = entities.RiskModerate
	}

	indicators := []string{}
	if depressiveCount > 0 {
		indicators = append(indicators, fmt.Sprintf("Depressive language detected (%d instances)", depressiveCount))
	}
	if positiveCount > 0 {
		indicators = append(indicators, fmt.Sprintf("Positive language detected (%d instances)", positiveCount))
	}
	if totalWords < limitedSampleThreshold {
		indicators = append(indicators, "Limited speech sample")
	}

	rounded := math.Round(riskScore*100) / 100

	return KeywordRiskReport{
		RiskScore:       rounded,
		RiskLevel:       riskLevel,
		Indicators:      indicators,
		WordCount:       totalWords,
		DepressiveWords: depressiveMatches,
		PositiveWords:   positiveMatches,
		Analysis:        fmt.Sprintf("Risk Level: %s (Score: %d%%)", riskLevel, int(math.Round(riskScore*100))),
	}
}

// matchWords returns every token containing any keyword as a substring
func matchWords(words, keywords []string) []string {
	matches := []string{}
	for _, word := range words {
		for _, keyword := range keywords {
			if strings.Contains(word, keyword) {
				matches = append(matches, word)
				break
			}
		}
	}
	return matches
}
