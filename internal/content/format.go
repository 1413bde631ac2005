package content

import (
	"regexp"
	"strings"

	"lyrix/internal/domain"
)

// timestampRE matches the exact [MM:SS.CC] prefix of an LRC line
var timestampRE = regexp.MustCompile(`^\[[0-9]{2}:[0-9]{2}\.[0-9]{2}\]`)

// Format splits raw text into lines and separates a leading [MM:SS.CC]
// timestamp from the rest of the line. Lines without one are kept
// verbatim. Plain(Format(s)) == s for every s.
func Format(raw string) []domain.FormattedLine {
	lines := strings.Split(raw, "\n")
	out := make([]domain.FormattedLine, len(lines))
	for i, line := range lines {
		out[i] = formatLine(line)
	}
	return out
}

// Verbatim wraps each line in a single undecorated segment
func Verbatim(raw string) []domain.FormattedLine {
	lines := strings.Split(raw, "\n")
	out := make([]domain.FormattedLine, len(lines))
	for i, line := range lines {
		out[i] = domain.FormattedLine{Segments: []domain.Segment{{Text: line}}}
	}
	return out
}

func formatLine(line string) domain.FormattedLine {
	loc := timestampRE.FindStringIndex(line)
	if loc == nil {
		return domain.FormattedLine{Segments: []domain.Segment{{Text: line}}}
	}

	segments := []domain.Segment{{Text: line[:loc[1]], Timestamp: true}}
	if rest := line[loc[1]:]; rest != "" {
		segments = append(segments, domain.Segment{Text: rest})
	}
	return domain.FormattedLine{Segments: segments}
}

// Plain drops the decoration and rebuilds the original text
func Plain(lines []domain.FormattedLine) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line.Segments {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
