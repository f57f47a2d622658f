package analysis

import "testing"

func TestExtractRecommendations(t *testing.T) {
	text := `Here are some videos that may help:
1. https://www.youtube.com/watch?v=ZToicYcHIOU.
2. https://youtu.be/inpok4MKVLM,
and again https://www.youtube.com/watch?v=ZToicYcHIOU!`

	recs := ExtractRecommendations(text)

	if len(recs) != 2 {
		t.Fatalf("expected 2 deduplicated links, got %d: %v", len(recs), recs)
	}
	if recs[0].URL != "https://www.youtube.com/watch?v=ZToicYcHIOU" {
		t.Errorf("expected trailing punctuation stripped, got %q", recs[0].URL)
	}
	if recs[0].Title != "Recommended Video 1" || recs[1].Title != "Recommended Video 2" {
		t.Errorf("unexpected titles: %q, %q", recs[0].Title, recs[1].Title)
	}
	if recs[1].URL != "https://youtu.be/inpok4MKVLM" {
		t.Errorf("unexpected second URL: %q", recs[1].URL)
	}
}

func TestExtractRecommendationsNoLinks(t *testing.T) {
	recs := ExtractRecommendations("take a walk outside and practice deep breathing")
	if len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", recs)
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.youtube.com/watch?v=ZToicYcHIOU", "ZToicYcHIOU"},
		{"https://youtube.com/watch?v=abc123", "abc123"},
		{"https://youtu.be/inpok4MKVLM", "inpok4MKVLM"},
		{"https://example.com/watch?v=nope", ""},
		{"https://vimeo.com/12345", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		if got := VideoID(tt.link); got != tt.want {
			t.Errorf("VideoID(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}
