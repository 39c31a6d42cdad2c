// Package format normalizes raw generator output into readable paragraphs.
package format

import (
	"regexp"
	"strings"
)

var (
	// A section separator is either the generator's literal "---" token or
	// a blank line left by a previous formatting pass.
	separators = regexp.MustCompile(`[ \t]*---[ \t]*|\n[ \t]*\n`)
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
	spaceRuns  = regexp.MustCompile(` {2,}`)
)

// Itinerary cleans up generated itinerary text: markdown emphasis and
// header markers are stripped, the "---" day/section separator becomes a
// paragraph break, and line breaks inside a section collapse to single
// spaces. The transform is a no-op on its own output.
func Itinerary(text string) string {
	cleaned := strings.ReplaceAll(text, "#", "")
	cleaned = strings.ReplaceAll(cleaned, "**", "")

	// Keep the overview label readable once the line breaks are gone.
	cleaned = strings.ReplaceAll(cleaned, "Daily Overview:", "Daily Overview")
	cleaned = strings.ReplaceAll(cleaned, "Daily Overview", "Daily Overview:")

	var paragraphs []string
	for _, part := range separators.Split(cleaned, -1) {
		part = lineBreaks.ReplaceAllString(part, " ")
		part = spaceRuns.ReplaceAllString(part, " ")
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}

	return strings.Join(paragraphs, "\n\n")
}
