package presenter

import (
	"fmt"
	"math"
	"time"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// maxPitchHz is the scaling ceiling for the pitch radar chart
const maxPitchHz = 200

// DashboardView is everything the dashboard overview renders for one
// result
type DashboardView struct {
	OverallMood    string             `json:"overallMood"`
	SentimentScore string             `json:"sentimentScore"`
	VoicePitch     string             `json:"voicePitch"`
	DepressionRisk entities.RiskLevel `json:"depressionRisk"`
	AnalysisDate   string             `json:"analysisDate"`
	SampleDuration string             `json:"sampleDuration"`
	IsMock         bool               `json:"isMock,omitempty"`

	Charts ChartSeries       `json:"charts"`
	Videos []EmbeddableVideo `json:"videos"`
}

// ChartSeries carries the four chart datasets in render order
type ChartSeries struct {
	// Happy, Sad, Angry, Anxious, Neutral
	Emotions [5]int `json:"emotions"`
	// Positive, Negative, Neutral
	Tone [3]int `json:"tone"`
	// Single sentiment point appended to the rolling series
	Sentiment int `json:"sentiment"`
	// Low, MidLow, Mid, MidHigh, High frequency bands
	PitchBands [5]int `json:"pitchBands"`
}

// EmbeddableVideo is a recommendation resolved to an embeddable player
// URL. Links that are not recognizable video URLs are dropped rather
// than rendered broken.
type EmbeddableVideo struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	VideoID  string `json:"videoId"`
	EmbedURL string `json:"embedUrl"`
}

// PresentDashboard reduces a stored result to its display form
func PresentDashboard(result *entities.NormalizedResult) *DashboardView {
	return &DashboardView{
		OverallMood:    result.DominantMood(),
		SentimentScore: fmt.Sprintf("%d%%", result.Sentiment),
		VoicePitch:     fmt.Sprintf("%d Hz", result.Pitch),
		DepressionRisk: result.DepressionRisk,
		AnalysisDate:   result.Timestamp.Format("1/2/2006"),
		SampleDuration: fmt.Sprintf("%d seconds", result.Duration),
		IsMock:         result.IsMock,
		Charts: ChartSeries{
			Emotions: [5]int{
				result.Emotions.Happy,
				result.Emotions.Sad,
				result.Emotions.Angry,
				result.Emotions.Anxious,
				result.Emotions.Neutral,
			},
			Tone:       [3]int{result.Tone.Positive, result.Tone.Negative, result.Tone.Neutral},
			Sentiment:  result.Sentiment,
			PitchBands: pitchBands(result.Pitch),
		},
		Videos: EmbeddableVideos(result.RecommendedVideos),
	}
}

// pitchBands distributes a pitch value across five overlapping
// frequency bands for the radar chart. Each band is clamped to 100.
func pitchBands(pitch int) [5]int {
	p := float64(pitch)

	var low, midLow, mid, midHigh, high float64
	if p < 120 {
		low = (120 - p) / 120 * 100
	}
	if p >= 100 && p < 140 {
		midLow = (p - 100) / 40 * 100
	}
	if p >= 130 && p < 170 {
		mid = (p - 130) / 40 * 100
	}
	if p >= 160 && p < maxPitchHz {
		midHigh = (p - 160) / 40 * 100
	}
	if p >= 190 {
		high = (p - 190) / 10 * 100
	}

	clamp := func(v float64) int {
		return int(math.Min(100, math.Floor(v)))
	}
	return [5]int{clamp(low), clamp(midLow), clamp(mid), clamp(midHigh), clamp(high)}
}

// EmbeddableVideos resolves recommendations to embeddable players,
// dropping links without a recognizable video ID
func EmbeddableVideos(videos entities.VideoRecommendations) []EmbeddableVideo {
	out := []EmbeddableVideo{}
	for _, v := range videos {
		id := analysis.VideoID(v.URL)
		if id == "" {
			continue
		}
		out = append(out, EmbeddableVideo{
			Title:    v.Title,
			URL:      v.URL,
			VideoID:  id,
			EmbedURL: "https://www.youtube.com/embed/" + id,
		})
	}
	return out
}

// PresentHistoryPoint is one entry in the trend series: the sentiment
// value with its day label
type PresentHistoryPoint struct {
	Label     string `json:"label"`
	Sentiment int    `json:"sentiment"`
}

// PresentHistory maps a history to the rolling sentiment series. The
// dashboard shows at most the last five points.
func PresentHistory(history []entities.NormalizedResult) []PresentHistoryPoint {
	const window = 5
	if len(history) > window {
		history = history[len(history)-window:]
	}

	points := make([]PresentHistoryPoint, len(history))
	for i, r := range history {
		points[i] = PresentHistoryPoint{
			Label:     fmt.Sprintf("Day %d", i+1),
			Sentiment: r.Sentiment,
		}
	}
	return points
}

// FormatDate renders a timestamp the way the dashboard header does
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
