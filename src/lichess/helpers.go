package lichess

import (
	"fmt"
	"net/url"
)

// Embeds always point at lichess.org itself. They load in visitors'
// browsers, not through our API client, so the configurable base url
// does not apply.
const embedBaseUrl = "https://lichess.org"

func GameEmbedUrl(gameID string, theme string) string {
	if theme == "" {
		theme = "brown"
	}
	return fmt.Sprintf("%s/embed/game/%s?theme=%s&bg=dark", embedBaseUrl, url.PathEscape(gameID), theme)
}

func PuzzleEmbedUrl() string {
	return embedBaseUrl + "/training/frame?theme=brown&bg=dark"
}

func TVEmbedUrl(channel string, theme string) string {
	if channel == "" {
		channel = "best"
	}
	if theme == "" {
		theme = "brown"
	}
	return fmt.Sprintf("%s/tv/%s/frame?theme=%s&bg=dark", embedBaseUrl, url.PathEscape(channel), theme)
}

func StudyEmbedUrl(studyID string, chapterID string) string {
	result := fmt.Sprintf("%s/study/embed/%s", embedBaseUrl, url.PathEscape(studyID))
	if chapterID != "" {
		result += "/" + url.PathEscape(chapterID)
	}
	return result
}

func AnalysisUrl(fen string) string {
	return fmt.Sprintf("%s/analysis/%s", embedBaseUrl, url.PathEscape(fen))
}

// FormatRating prefixes strong ratings with a badge for the widgets.
func FormatRating(rating int) string {
	switch {
	case rating >= 2400:
		return fmt.Sprintf("🏆 %d", rating)
	case rating >= 2200:
		return fmt.Sprintf("💎 %d", rating)
	case rating >= 2000:
		return fmt.Sprintf("⭐ %d", rating)
	case rating >= 1800:
		return fmt.Sprintf("🔥 %d", rating)
	default:
		return fmt.Sprintf("%d", rating)
	}
}

var timeControlNames = map[string]string{
	"bullet":         "Bullet",
	"blitz":          "Blitz",
	"rapid":          "Rapid",
	"classical":      "Classical",
	"correspondence": "Correspondence",
	"chess960":       "Chess960",
	"puzzle":         "Puzzles",
}

func TimeControlName(key string) string {
	if name, ok := timeControlNames[key]; ok {
		return name
	}
	return key
}
