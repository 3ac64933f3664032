package screens

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/config"
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/services"
	"github.com/kerbaras/novels/pkg/sources"
)

type memoryProgress struct {
	mu     sync.Mutex
	values map[string]int
}

func newMemoryProgress() *memoryProgress {
	return &memoryProgress{values: map[string]int{}}
}

func (m *memoryProgress) SaveProgress(novelID string, chapter int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[novelID] = chapter
	return nil
}

func (m *memoryProgress) GetProgress(novelID string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[novelID]
	return v, ok, nil
}

func (m *memoryProgress) ListProgress() ([]*data.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*data.Progress
	for id, ch := range m.values {
		out = append(out, &data.Progress{NovelID: id, Chapter: ch, UpdatedAt: time.Now()})
	}
	return out, nil
}

func (m *memoryProgress) Close() error { return nil }

func (m *memoryProgress) get(novelID string) (int, bool) {
	v, ok, _ := m.GetProgress(novelID)
	return v, ok
}

func chaptered(id, title string, n int) data.Novel {
	novel := data.Novel{ID: id, Title: title, Author: "Author " + title, Description: "About " + title}
	for i := 0; i < n; i++ {
		novel.Chapters = append(novel.Chapters, data.Chapter{
			ID:       string(rune('1' + i)),
			Title:    title + " chapter " + string(rune('1'+i)),
			FilePath: "/novels/" + id + "/" + string(rune('1'+i)) + ".txt",
		})
	}
	return novel
}

// testCatalog has two three-chapter novels, a single-file novel and one
// whose content is missing.
func testCatalog() []data.Novel {
	return []data.Novel{
		chaptered("alpha", "Alpha", 3),
		chaptered("beta", "Beta", 3),
		{ID: "solo", Title: "Solo", Author: "S", FilePath: "/novels/solo.txt"},
		{ID: "broken", Title: "Broken", Author: "B", FilePath: "/novels/missing.txt"},
	}
}

func testSite(t *testing.T, novels []data.Novel) fstest.MapFS {
	t.Helper()

	index, err := json.Marshal(novels)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"novels/index.json": {Data: index},
		"novels/solo.txt":   {Data: []byte("Solo opening.\n\nSolo ending.")},
	}
	for _, novel := range novels {
		if novel.ID == "broken" {
			continue
		}
		for i, ch := range novel.Chapters {
			body := novel.Title + " paragraph one of " + ch.ID + ".\n\n" + novel.Title + " paragraph two."
			if i == 0 {
				body += "\n\n\x1b[31mcolored\x1b[0m text"
			}
			fsys[ch.FilePath[1:]] = &fstest.MapFile{Data: []byte(body)}
		}
	}
	return fsys
}

func newTestController(t *testing.T, fsys fstest.MapFS) (*services.NovelController, *memoryProgress) {
	t.Helper()
	repo := newMemoryProgress()
	source := sources.NewLocalFS(fsys, "")
	controller := services.NewNovelControllerWith(config.Default(), source, repo, zap.NewNop())
	return controller, repo
}

func pngCover(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: 80, B: uint8(y * 30), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// drain runs cmd and every command it batches, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
