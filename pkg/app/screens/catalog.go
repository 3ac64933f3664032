package screens

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/app/components"
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/services"
)

type CatalogScreen struct {
	controller *services.NovelController
	novelList  *components.NovelList
	keys       keyMap
	width      int
	height     int
}

func NewCatalogScreen(controller *services.NovelController) *CatalogScreen {
	return &CatalogScreen{
		controller: controller,
		novelList:  components.NewNovelList(),
		keys:       newKeyMap(),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	return s.loadCatalog
}

func (s *CatalogScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.novelList.Width = width
	s.novelList.Height = height
}

// SetActive marks the novel being read.
func (s *CatalogScreen) SetActive(novelID string) {
	s.novelList.ActiveID = novelID
}

func (s *CatalogScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			s.novelList.Prev()
		case key.Matches(msg, s.keys.Down):
			s.novelList.Next()
		case key.Matches(msg, s.keys.Select):
			selected := s.novelList.Selected()
			if selected != nil {
				novel := selected.Novel
				return s, func() tea.Msg {
					return NovelSelectedMsg{Novel: novel}
				}
			}
		}

	case catalogLoadedMsg:
		items := make([]components.NovelListItem, len(msg.state.Novels))
		for i := range msg.state.Novels {
			items[i] = components.NovelListItem{Novel: &msg.state.Novels[i]}
		}
		s.novelList.SetItems(items)
		return s, s.loadCovers(items)

	case coverLoadedMsg:
		if msg.err != nil {
			s.controller.Logger().Debug("Cover unavailable", zap.String("novel", msg.novelID), zap.Error(msg.err))
			return s, nil
		}
		s.novelList.SetCover(msg.novelID, msg.cover)
	}

	return s, nil
}

func (s *CatalogScreen) View() string {
	return s.novelList.View()
}

// Commands
func (s *CatalogScreen) loadCatalog() tea.Msg {
	return catalogLoadedMsg{state: s.controller.Catalog().Load(context.Background())}
}

func (s *CatalogScreen) loadCovers(items []components.NovelListItem) tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range items {
		if item.Novel.Cover == "" {
			continue
		}
		cmds = append(cmds, s.loadCover(item.Novel))
	}
	return tea.Batch(cmds...)
}

func (s *CatalogScreen) loadCover(novel *data.Novel) tea.Cmd {
	return func() tea.Msg {
		cover, err := s.controller.Cover(context.Background(), novel, components.CoverCols, components.CoverRows)
		return coverLoadedMsg{novelID: novel.ID, cover: cover, err: err}
	}
}
