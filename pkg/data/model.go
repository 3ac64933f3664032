package data

import (
	"fmt"
	"time"
)

type Novel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Cover       string    `json:"cover"`
	Description string    `json:"description"`
	FilePath    string    `json:"filePath"`
	Chapters    []Chapter `json:"chapters,omitempty"`
}

// HasChapters reports whether content is resolved through the chapter
// sequence rather than the single FilePath.
func (n *Novel) HasChapters() bool {
	return len(n.Chapters) > 0
}

// Chapter returns the chapter at index i, or nil when out of range.
func (n *Novel) Chapter(i int) *Chapter {
	if i < 0 || i >= len(n.Chapters) {
		return nil
	}
	return &n.Chapters[i]
}

type Chapter struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FilePath string `json:"filePath"`
}

type Progress struct {
	NovelID   string
	Chapter   int
	UpdatedAt time.Time
}

// ProgressKey is the storage key of a novel's reading position.
func ProgressKey(novelID string) string {
	return fmt.Sprintf("novel_%s_progress", novelID)
}
