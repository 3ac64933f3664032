package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kerbaras/novels/pkg/app/components"
	"github.com/kerbaras/novels/pkg/app/styles"
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/services"
)

// ContentPlaceholderLines is how many skeleton lines show while a chapter loads.
const ContentPlaceholderLines = 10

// ReaderScreen shows the open novel. Responses are applied in arrival order:
// a slow response for a chapter the reader already left still replaces the
// content on screen.
type ReaderScreen struct {
	reader     *services.Reader
	keys       keyMap
	viewport   viewport.Model
	paragraphs []string
	loading    bool
	failed     bool
	width      int
	height     int
}

func NewReaderScreen(reader *services.Reader) *ReaderScreen {
	return &ReaderScreen{
		reader:   reader,
		keys:     newKeyMap(),
		viewport: viewport.New(80, 20),
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

// Open switches the reader to novel and starts fetching its content.
func (s *ReaderScreen) Open(novel *data.Novel) tea.Cmd {
	return s.fetch(s.reader.Open(novel))
}

func (s *ReaderScreen) Close() {
	s.reader.Close()
	s.paragraphs = nil
	s.loading = false
	s.failed = false
}

func (s *ReaderScreen) Loading() bool {
	return s.loading
}

func (s *ReaderScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.layout()
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Prev):
			if req, ok := s.reader.Prev(); ok {
				return s, s.fetch(req)
			}
			return s, nil
		case key.Matches(msg, s.keys.Next):
			if req, ok := s.reader.Next(); ok {
				return s, s.fetch(req)
			}
			return s, nil
		}
		s.viewport, cmd = s.viewport.Update(msg)

	case tea.MouseMsg:
		s.viewport, cmd = s.viewport.Update(msg)

	case contentLoadedMsg:
		s.paragraphs = msg.page.Paragraphs
		s.failed = msg.page.Err != nil
		s.loading = false
		s.layout()
		s.viewport.GotoTop()
	}

	return s, cmd
}

func (s *ReaderScreen) View() string {
	novel := s.reader.Novel()
	if novel == nil {
		return ""
	}

	parts := []string{}
	if info := s.renderInfo(novel); info != "" {
		parts = append(parts, info)
	}
	nav := s.renderNav(novel)
	if nav != "" {
		parts = append(parts, nav)
	}
	if ch := s.reader.CurrentChapter(); ch != nil {
		parts = append(parts, styles.TitleStyle.Render(ch.Title), s.renderPosition(novel))
	}
	parts = append(parts, s.viewport.View())
	if nav != "" {
		parts = append(parts, nav)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Commands
func (s *ReaderScreen) fetch(req services.ContentRequest) tea.Cmd {
	s.loading = true
	s.layout()
	return func() tea.Msg {
		return contentLoadedMsg{page: s.reader.Fetch(context.Background(), req)}
	}
}

// layout sizes the viewport to what is left after the chrome and refreshes
// its content.
func (s *ReaderScreen) layout() {
	width := s.contentWidth()
	s.viewport.Width = width

	chrome := 0
	if novel := s.reader.Novel(); novel != nil {
		chrome = lipgloss.Height(s.renderInfo(novel))
		if nav := s.renderNav(novel); nav != "" {
			chrome += 2 * lipgloss.Height(nav)
		}
		if s.reader.CurrentChapter() != nil {
			chrome += 3
		}
	}
	height := s.height - chrome
	if height < 3 {
		height = 3
	}
	s.viewport.Height = height

	if s.loading {
		s.viewport.SetContent(components.Placeholder(ContentPlaceholderLines, width))
		return
	}
	s.viewport.SetContent(s.renderParagraphs(width))
}

func (s *ReaderScreen) contentWidth() int {
	width := s.width
	if width > 100 {
		width = 100
	}
	if width < 10 {
		width = 10
	}
	return width
}

func (s *ReaderScreen) renderInfo(novel *data.Novel) string {
	// Hidden on narrow terminals.
	if s.width < 60 {
		return ""
	}

	desc := novel.Description
	if len([]rune(desc)) > 200 {
		desc = string([]rune(desc)[:197]) + "..."
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextStyle.Bold(true).Render(novel.Title),
		styles.MutedStyle.Render(fmt.Sprintf("by %s", novel.Author)),
		styles.MutedStyle.Render(desc),
	)
	return styles.CardStyle.Width(s.contentWidth() - 2).Render(info)
}

func (s *ReaderScreen) renderNav(novel *data.Novel) string {
	if !novel.HasChapters() {
		return ""
	}

	prev := styles.NavStyleFor(s.reader.CanPrev()).Render("‹ 前話")
	next := styles.NavStyleFor(s.reader.CanNext()).Render("次話 ›")
	position := styles.TextStyle.Render(components.ChapterPosition(s.reader.Chapter()))

	inner := s.contentWidth() - 4
	gap := inner - lipgloss.Width(prev) - lipgloss.Width(position) - lipgloss.Width(next)
	left, right := gap/2, gap-gap/2
	if left < 1 {
		left, right = 1, 1
	}

	bar := prev + strings.Repeat(" ", left) + position + strings.Repeat(" ", right) + next
	return styles.NavBarStyle.Render(bar)
}

func (s *ReaderScreen) renderPosition(novel *data.Novel) string {
	barWidth := s.contentWidth() / 3
	return components.ChapterProgress(s.reader.Chapter(), len(novel.Chapters), barWidth)
}

func (s *ReaderScreen) renderParagraphs(width int) string {
	style := styles.TextStyle.Width(width)
	if s.failed {
		style = styles.ErrorStyle.Width(width)
	}
	blocks := make([]string, len(s.paragraphs))
	for i, p := range s.paragraphs {
		blocks[i] = style.Render(sanitize(p))
	}
	return strings.Join(blocks, "\n\n")
}

// sanitize drops terminal control sequences from a paragraph, keeping its
// line breaks.
func sanitize(p string) string {
	lines := strings.Split(p, "\n")
	for i, line := range lines {
		lines[i] = ansi.Strip(line)
	}
	return strings.Join(lines, "\n")
}
