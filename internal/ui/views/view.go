package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lyrix/internal/domain"
)

// ResultsTop is the screen row of the first result line: padding, title,
// title margin, search input, gap
const ResultsTop = 5

// ResultsLeft is the screen column where result rows start
const ResultsLeft = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Loading      bool
	LoadFailed   bool
	SpinnerView  string
	InputView    string
	Query        string
	Results      []domain.CatalogEntry
	Selected     int
	ListOffset   int
	ListHeight   int
	CatalogSize  int
	Notice       string
	NoticeIsInfo bool
	HelpView     string
	Viewer       *ViewerView
}

// ViewerView is the rendered state of the open overlay
type ViewerView struct {
	Title      string
	Artist     string
	Filename   string
	Body       string // viewport output
	CopyStatus domain.CopyStatus
	ScrollInfo string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	logo := r.styles.Title.Render("lyrix")
	content.WriteString(logo)
	content.WriteString("\n")

	if state.Loading {
		content.WriteString(state.SpinnerView + " " + r.styles.Loading.Render("Loading catalog..."))
	} else {
		content.WriteString(state.InputView)
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderResultList(state))

	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	// Container padding takes one line above and below
	paddingNeeded := state.Height - 2 - currentLines - lipgloss.Height(footer)
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Viewer != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.RenderViewer(*state.Viewer, state.Width), state.Height, state.Width)
	}
	return finalContent
}

// renderResultList renders the visible window of results
func (r *Renderer) renderResultList(state ViewState) string {
	switch {
	case state.Loading:
		return ""
	case state.LoadFailed:
		return r.styles.Dim.Render("Search is unavailable until the catalog loads.")
	case strings.TrimSpace(state.Query) == "":
		return r.styles.Dim.Render(fmt.Sprintf("%d lyrics in catalog. Start typing to search.", state.CatalogSize))
	case len(state.Results) == 0:
		return r.styles.Dim.Render("No matches.")
	}

	height := state.ListHeight
	if height <= 0 {
		height = len(state.Results)
	}
	end := min(len(state.Results), state.ListOffset+height)

	width := state.Width - 2*ResultsLeft
	lines := make([]string, 0, end-state.ListOffset)
	for i := state.ListOffset; i < end; i++ {
		lines = append(lines, r.resultRender.RenderResult(state.Results[i], i == state.Selected, state.Query, width))
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the status line and key help
func (r *Renderer) renderFooter(state ViewState) string {
	var status string
	switch {
	case state.Notice != "" && state.NoticeIsInfo:
		status = r.styles.Success.Render(state.Notice)
	case state.Notice != "":
		status = r.styles.Error.Render(state.Notice)
	case len(state.Results) > 0:
		pos := "-"
		if state.Selected >= 0 {
			pos = fmt.Sprintf("%d", state.Selected+1)
		}
		status = r.styles.Status.Render(fmt.Sprintf("%s/%d matches", pos, len(state.Results)))
	}

	if status == "" {
		return r.styles.Help.Render(state.HelpView)
	}
	return status + "\n" + r.styles.Help.Render(state.HelpView)
}

// ViewerSize returns the outer size of the viewer box for a terminal
func ViewerSize(width, height int) (int, int) {
	w := min(max(width-8, 20), 100)
	h := max(height-4, 8)
	return w, h
}

// ViewerChrome is the number of box rows not used by the lyrics body:
// border (2), title, artist, gap, gap, buttons
const ViewerChrome = 7

// RenderViewer renders the overlay box
func (r *Renderer) RenderViewer(v ViewerView, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.ViewerTitle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(r.styles.Artist.Render(v.Artist) + r.styles.Filename.Render("  "+v.Filename))
	b.WriteString("\n\n")
	b.WriteString(v.Body)
	b.WriteString("\n\n")
	b.WriteString(r.renderButtons(v))

	boxW, _ := ViewerSize(width, 0)
	// Border and horizontal padding
	return r.styles.ViewerBox.Width(boxW - 2).Render(b.String())
}

func (r *Renderer) renderButtons(v ViewerView) string {
	copyButton := r.styles.Button.Render("c Copy")
	if v.CopyStatus == domain.CopyCopied {
		copyButton = r.styles.ButtonDone.Render("✓ Copied")
	}
	buttons := []string{
		copyButton,
		r.styles.Button.Render("d Download"),
		r.styles.Button.Render("p Pager"),
		r.styles.Button.Render("esc Close"),
	}
	line := strings.Join(buttons, " ")
	if v.ScrollInfo != "" {
		line += "  " + r.styles.Scroll.Render(v.ScrollInfo)
	}
	return line
}
