package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/novels/pkg/app/screens"
	"github.com/kerbaras/novels/pkg/services"
)

type App struct {
	controller *services.NovelController
}

func NewApp(controller *services.NovelController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
