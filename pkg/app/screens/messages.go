package screens

import (
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/services"
)

// NovelSelectedMsg is sent when a catalog row is chosen.
type NovelSelectedMsg struct {
	Novel *data.Novel
}

type catalogLoadedMsg struct {
	state services.CatalogState
}

type coverLoadedMsg struct {
	novelID string
	cover   string
	err     error
}

type contentLoadedMsg struct {
	page services.Page
}
