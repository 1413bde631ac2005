package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lyrix/internal/domain"
)

// ResultRenderer handles rendering of search result rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{
		styles: styles,
	}
}

// RenderResult renders one result as "Title  Artist  filename"
func (r *ResultRenderer) RenderResult(entry domain.CatalogEntry, isSelected bool, query string, width int) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}

	marker := "  "
	if isSelected {
		marker = "▸ "
	}

	highlight := r.styles.Highlight.Inherit(bg)
	parts := []string{
		bg.Render(marker),
		highlightMatch(entry.Title, query, highlight, bg.Bold(true)),
		bg.Render("  "),
		highlightMatch(entry.Artist, query, highlight, r.styles.Artist.Inherit(bg)),
		bg.Render("  "),
		highlightMatch(entry.Filename, query, highlight, r.styles.Filename.Inherit(bg)),
	}
	line := strings.Join(parts, "")

	if width > 0 && lipgloss.Width(line) < width && isSelected {
		line += bg.Render(strings.Repeat(" ", width-lipgloss.Width(line)))
	}
	return line
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths; fall back to plain rendering
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
