package screens

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/novels/pkg/app/styles"
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/services"
)

type focusArea int

const (
	catalogFocus focusArea = iota
	readerFocus
)

const (
	// Below this width the sidebar only shows as an overlay.
	wideLayoutWidth = 80
	sidebarWidth    = 32

	WelcomeTitle = "KaroNovelへようこそ！"
	WelcomeText  = "読みたいサイトを選ぼう。読書履歴は自動で保存されるよ。"
)

type RootScreen struct {
	controller *services.NovelController

	catalog  *CatalogScreen
	reader   *ReaderScreen
	selected *data.Novel
	focus    focusArea
	menuOpen bool

	keys keyMap
	help help.Model

	width  int
	height int
}

func NewRootScreen(controller *services.NovelController) *RootScreen {
	return &RootScreen{
		controller: controller,
		catalog:    NewCatalogScreen(controller),
		reader:     NewReaderScreen(controller.Reader()),
		focus:      catalogFocus,
		keys:       newKeyMap(),
		help:       help.New(),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.catalog.Init()
}

func (r *RootScreen) wide() bool {
	return r.width >= wideLayoutWidth
}

// sidebarVisible reports whether the catalog is on screen.
func (r *RootScreen) sidebarVisible() bool {
	return r.wide() || r.menuOpen
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.resize()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Quit):
			return r, tea.Quit
		case key.Matches(msg, r.keys.Menu):
			r.menuOpen = !r.menuOpen
			if r.menuOpen {
				r.focus = catalogFocus
			}
			r.resize()
			return r, nil
		case key.Matches(msg, r.keys.Close):
			if r.menuOpen {
				r.menuOpen = false
				r.resize()
			}
			return r, nil
		case key.Matches(msg, r.keys.Home):
			r.selected = nil
			r.reader.Close()
			r.catalog.SetActive("")
			r.focus = catalogFocus
			return r, nil
		case key.Matches(msg, r.keys.Focus):
			if r.focus == catalogFocus && r.selected != nil {
				r.focus = readerFocus
			} else if r.sidebarVisible() {
				r.focus = catalogFocus
			}
			return r, nil
		}

		// Keys go to the focused pane only.
		if r.focus == catalogFocus && r.sidebarVisible() {
			_, cmd = r.catalog.Update(msg)
		} else if r.selected != nil {
			_, cmd = r.reader.Update(msg)
		}
		return r, cmd

	case NovelSelectedMsg:
		r.selected = msg.Novel
		r.menuOpen = false
		r.focus = readerFocus
		r.catalog.SetActive(msg.Novel.ID)
		r.resize()
		return r, r.reader.Open(msg.Novel)
	}

	// Everything else goes to both panes.
	var catalogCmd, readerCmd tea.Cmd
	_, catalogCmd = r.catalog.Update(msg)
	_, readerCmd = r.reader.Update(msg)
	return r, tea.Batch(catalogCmd, readerCmd)
}

func (r *RootScreen) resize() {
	bodyHeight := r.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	switch {
	case r.wide():
		r.catalog.SetSize(sidebarWidth, bodyHeight)
		r.reader.SetSize(r.width-sidebarWidth-3, bodyHeight)
	default:
		r.catalog.SetSize(r.width, bodyHeight)
		r.reader.SetSize(r.width, bodyHeight)
	}
	r.help.Width = r.width
}

func (r *RootScreen) View() string {
	if r.width == 0 {
		return "Loading..."
	}

	header := r.renderHeader()

	main := r.renderMain()
	var body string
	switch {
	case r.wide():
		sidebar := styles.SidebarStyle.Width(sidebarWidth).Render(r.catalog.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	case r.menuOpen:
		// The overlay covers the main area on narrow terminals.
		body = r.catalog.View()
	default:
		body = main
	}

	helpLine := styles.HelpStyle.Render(r.help.View(r.keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, helpLine)
}

func (r *RootScreen) renderHeader() string {
	title := "📖 Novel Reader"
	if !r.wide() {
		title = "☰ " + title
	}
	if r.selected != nil && r.wide() {
		title += "  ·  " + r.selected.Title
	}
	return styles.HeaderStyle.Width(r.width).Render(title)
}

func (r *RootScreen) renderMain() string {
	if r.selected == nil {
		return r.renderWelcome()
	}
	return r.reader.View()
}

func (r *RootScreen) renderWelcome() string {
	width := r.width
	if r.wide() {
		width = r.width - sidebarWidth - 3
	}
	welcome := lipgloss.JoinVertical(lipgloss.Center,
		styles.NavStyle.Render("📖"),
		"",
		styles.TitleStyle.Render(WelcomeTitle),
		styles.MutedStyle.Render(WelcomeText),
	)
	return lipgloss.Place(width, r.height-4, lipgloss.Center, lipgloss.Center, welcome)
}
