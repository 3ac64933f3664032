package screens

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/novels/pkg/app/components"
	"github.com/kerbaras/novels/pkg/data"
)

func loadedCatalog(t *testing.T, fsys fstest.MapFS) *CatalogScreen {
	t.Helper()
	controller, _ := newTestController(t, fsys)
	s := NewCatalogScreen(controller)
	s.SetSize(40, 30)
	for _, msg := range drain(s.Init()) {
		_, cmd := s.Update(msg)
		for _, m := range drain(cmd) {
			s.Update(m)
		}
	}
	return s
}

func TestCatalogScreenLoading(t *testing.T) {
	controller, _ := newTestController(t, testSite(t, testCatalog()))
	s := NewCatalogScreen(controller)
	s.SetSize(40, 30)

	view := s.View()
	assert.Contains(t, view, "░")
	assert.NotContains(t, view, components.EmptyMessage)
}

func TestCatalogScreenOneRowPerNovel(t *testing.T) {
	s := loadedCatalog(t, testSite(t, testCatalog()))

	assert.Len(t, s.novelList.Rows(), 4)
	view := s.View()
	for _, title := range []string{"Alpha", "Beta", "Solo", "Broken"} {
		assert.Contains(t, view, title)
	}
	assert.NotContains(t, view, "░")
}

func TestCatalogScreenEmpty(t *testing.T) {
	s := loadedCatalog(t, fstest.MapFS{"novels/index.json": {Data: []byte("[]")}})

	assert.Empty(t, s.novelList.Rows())
	assert.Contains(t, s.View(), components.EmptyMessage)
}

func TestCatalogScreenUnavailable(t *testing.T) {
	s := loadedCatalog(t, fstest.MapFS{})

	assert.False(t, s.novelList.Loading)
	assert.Contains(t, s.View(), components.EmptyMessage)
}

func TestCatalogScreenSelect(t *testing.T) {
	s := loadedCatalog(t, testSite(t, testCatalog()))

	_, cmd := s.Update(keyPress("down"))
	assert.Nil(t, cmd)

	_, cmd = s.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(NovelSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "beta", msg.Novel.ID)

	// Wraps around from the top.
	s.Update(keyPress("up"))
	s.Update(keyPress("up"))
	_, cmd = s.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, "broken", cmd().(NovelSelectedMsg).Novel.ID)
}

func TestCatalogScreenLoadsCovers(t *testing.T) {
	novels := testCatalog()
	novels[0].Cover = "/covers/alpha.png"
	novels[1].Cover = "/covers/gone.png"
	fsys := testSite(t, novels)
	fsys["covers/alpha.png"] = &fstest.MapFile{Data: pngCover(t)}

	s := loadedCatalog(t, fsys)

	byID := map[string]string{}
	for _, item := range s.novelList.Items {
		byID[item.Novel.ID] = item.Cover
	}
	assert.NotEmpty(t, byID["alpha"])
	assert.True(t, strings.Contains(byID["alpha"], "▀"))
	assert.Empty(t, byID["beta"])
}

func TestCatalogScreenActive(t *testing.T) {
	s := loadedCatalog(t, testSite(t, []data.Novel{chaptered("alpha", "Alpha", 1)}))

	before := s.View()
	s.SetActive("alpha")
	assert.NotEqual(t, before, s.View())
	assert.Contains(t, s.View(), "▍")
}
