package analysis

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// urlPattern captures http(s) links embedded in free-form provider
// text. Quotes and commas terminate a link because the text is often
// JSON-ish prose.
var urlPattern = regexp.MustCompile(`https?://[^\s"',]+`)

// trailingPunctuation is stripped from matched links; sentences ending
// in a link otherwise leak their final punctuation into the URL.
const trailingPunctuation = ".,;:!?)"

// ExtractRecommendations pulls video links out of free-form
// recommendation text. Links are deduplicated by exact URL in
// first-seen order and labeled sequentially.
func ExtractRecommendations(text string) entities.VideoRecommendations {
	recommendations := entities.VideoRecommendations{}
	seen := make(map[string]bool)

	for _, match := range urlPattern.FindAllString(text, -1) {
		link := strings.TrimRight(match, trailingPunctuation)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		recommendations = append(recommendations, entities.VideoRecommendation{
			Title: fmt.Sprintf("Recommended Video %d", len(recommendations)+1),
			URL:   link,
		})
	}

	return recommendations
}

// VideoID extracts the YouTube video identifier from a link. Supports
// youtu.be short links and youtube.com watch URLs; returns "" for
// anything else, which the dashboard treats as not embeddable.
func VideoID(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	switch {
	case host == "youtu.be":
		return strings.Trim(parsed.Path, "/")
	case strings.HasSuffix(host, "youtube.com"):
		return parsed.Query().Get("v")
	}
	return ""
}
