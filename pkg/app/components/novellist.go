package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/novels/pkg/app/styles"
	"github.com/kerbaras/novels/pkg/data"
)

const (
	// PlaceholderRows is how many skeleton rows show while loading.
	PlaceholderRows = 5

	CoverCols = 4
	CoverRows = 2

	EmptyMessage = "No novels available"
	ListHeading  = "小説リスト"
)

type NovelListItem struct {
	Novel *data.Novel
	Cover string // pre-rendered thumbnail, empty until loaded
}

type NovelList struct {
	Items         []NovelListItem
	SelectedIndex int
	ActiveID      string
	Loading       bool
	Width         int
	Height        int
}

func NewNovelList() *NovelList {
	return &NovelList{
		Items:         []NovelListItem{},
		SelectedIndex: 0,
		Loading:       true,
		Width:         32,
		Height:        20,
	}
}

// SetItems replaces the list and ends the loading state.
func (m *NovelList) SetItems(items []NovelListItem) {
	m.Items = items
	m.Loading = false
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *NovelList) SetCover(novelID, cover string) {
	for i := range m.Items {
		if m.Items[i].Novel.ID == novelID {
			m.Items[i].Cover = cover
		}
	}
}

func (m *NovelList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *NovelList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *NovelList) Selected() *NovelListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// Rows renders one entry per novel, in catalog order.
func (m *NovelList) Rows() []string {
	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		rows[i] = m.renderRow(i, item)
	}
	return rows
}

func (m *NovelList) View() string {
	if m.Loading {
		return m.renderPlaceholders()
	}

	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("📖\n" + EmptyMessage)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(ListHeading))
	b.WriteString("\n")
	for _, row := range m.Rows() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *NovelList) renderRow(i int, item NovelListItem) string {
	textWidth := m.Width - CoverCols - 4
	if textWidth < 4 {
		textWidth = 4
	}

	title := styles.TextStyle.Bold(true).Render(ansi.Truncate(item.Novel.Title, textWidth, "…"))
	author := styles.MutedStyle.Render(ansi.Truncate(item.Novel.Author, textWidth, "…"))

	cover := item.Cover
	if cover == "" {
		cover = emptyCover()
	}

	active := item.Novel.ID == m.ActiveID

	// The active marker must survive terminals without color.
	gutter := " \n "
	if active {
		gutter = styles.NavStyle.Render("▍\n▍")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cover,
		gutter,
		lipgloss.JoinVertical(lipgloss.Left, title, author),
	)

	style := styles.RowStyle
	if active {
		style = styles.ActiveRowStyle.PaddingLeft(1)
	}
	if i == m.SelectedIndex {
		style = style.PaddingLeft(0).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(styles.Primary)
	}
	return style.Width(m.Width - 1).Render(row)
}

func (m *NovelList) renderPlaceholders() string {
	textWidth := m.Width - CoverCols - 4
	if textWidth < 4 {
		textWidth = 4
	}

	rows := make([]string, PlaceholderRows)
	for i := range rows {
		rows[i] = styles.RowStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			Placeholder(CoverRows, CoverCols),
			" ",
			lipgloss.JoinVertical(lipgloss.Left, bar(textWidth, 3, 4), bar(textWidth, 1, 2)),
		))
	}
	return strings.Join(rows, "\n")
}

func emptyCover() string {
	line := styles.MutedStyle.Render(strings.Repeat("▒", CoverCols))
	lines := make([]string, CoverRows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
