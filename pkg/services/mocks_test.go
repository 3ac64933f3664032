package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/integrations"
	"github.com/kerbaras/novels/pkg/sources"
)

// mockSource serves files from a map unless a func override is set.
type mockSource struct {
	mu          sync.Mutex
	files       map[string]string
	catalogFunc func(ctx context.Context) ([]data.Novel, error)
	contentFunc func(ctx context.Context, ref string) (string, error)
	requests    []string
}

func (m *mockSource) Catalog(ctx context.Context) ([]data.Novel, error) {
	if m.catalogFunc != nil {
		return m.catalogFunc(ctx)
	}
	return []data.Novel{}, nil
}

func (m *mockSource) Content(ctx context.Context, ref string) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, ref)
	m.mu.Unlock()

	if m.contentFunc != nil {
		return m.contentFunc(ctx, ref)
	}
	text, ok := m.files[ref]
	if !ok {
		return "", fmt.Errorf("%s: %w", ref, sources.ErrNotFound)
	}
	return text, nil
}

func (m *mockSource) Asset(ctx context.Context, ref string) ([]byte, error) {
	text, err := m.Content(ctx, ref)
	return []byte(text), err
}

// memoryStore records every progress write in order.
type memoryStore struct {
	mu      sync.Mutex
	values  map[string]int
	writes  []string
	saveErr error
	closed  bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]int{}}
}

func (m *memoryStore) SaveProgress(novelID string, chapter int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, fmt.Sprintf("%s=%d", novelID, chapter))
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values[novelID] = chapter
	return nil
}

func (m *memoryStore) GetProgress(novelID string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.values[novelID]
	return ch, ok, nil
}

func (m *memoryStore) ListProgress() ([]*data.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*data.Progress
	for id, ch := range m.values {
		out = append(out, &data.Progress{NovelID: id, Chapter: ch})
	}
	return out, nil
}

func (m *memoryStore) Close() error {
	m.closed = true
	return nil
}

type mockExporter struct {
	novel    *data.Novel
	sections []integrations.Section
	cover    []byte
	err      error
}

func (m *mockExporter) Export(novel *data.Novel, sections []integrations.Section, cover []byte) (string, error) {
	m.novel, m.sections, m.cover = novel, sections, cover
	if m.err != nil {
		return "", m.err
	}
	return "/tmp/" + novel.ID + ".epub", nil
}

func chapteredNovel(id string, n int) *data.Novel {
	novel := &data.Novel{ID: id, Title: "Novel " + id, Author: "Author"}
	for i := 0; i < n; i++ {
		novel.Chapters = append(novel.Chapters, data.Chapter{
			ID:       fmt.Sprintf("%s-c%d", id, i),
			Title:    fmt.Sprintf("Chapter %d", i+1),
			FilePath: fmt.Sprintf("/novels/%s/%d.txt", id, i),
		})
	}
	return novel
}

func singleNovel(id string) *data.Novel {
	return &data.Novel{ID: id, Title: "Novel " + id, FilePath: "/novels/" + id + ".txt"}
}

func filesFor(novels ...*data.Novel) map[string]string {
	files := map[string]string{}
	for _, n := range novels {
		if n.FilePath != "" {
			files[n.FilePath] = "text of " + n.ID
		}
		for _, ch := range n.Chapters {
			files[ch.FilePath] = "title " + ch.ID + "\n\nbody " + ch.ID
		}
	}
	return files
}
