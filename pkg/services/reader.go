package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/sources"
)

const (
	ChapterErrorText = "Error loading chapter content. Please try again later."
	NovelErrorText   = "Error loading novel content. Please try again later."
)

var (
	ErrNoNovel   = errors.New("no novel selected")
	ErrNoContent = errors.New("novel has no content reference")
)

// ProgressStore persists the last viewed chapter per novel.
type ProgressStore interface {
	SaveProgress(novelID string, chapter int) error
	GetProgress(novelID string) (int, bool, error)
}

// ContentRequest captures what to fetch for one reader state, so the fetch
// can run after the state has moved on.
type ContentRequest struct {
	NovelID   string
	Chapter   int
	Ref       string
	Chaptered bool
}

// Page is the resolved content of a request.
type Page struct {
	NovelID    string
	Chapter    int
	Paragraphs []string
	Err        error
}

// Reader holds the chapter index of the open novel. Every state it enters
// is written to the progress store, whether or not the content loads.
type Reader struct {
	source   sources.Source
	progress ProgressStore
	logger   *zap.Logger
	resume   bool

	novel   *data.Novel
	chapter int
}

func NewReader(source sources.Source, progress ProgressStore, logger *zap.Logger) *Reader {
	return &Reader{source: source, progress: progress, logger: logger}
}

// SetResume makes Open start at the saved chapter.
func (r *Reader) SetResume(resume bool) {
	r.resume = resume
}

// Open switches to novel. The chapter index is not reset: it is carried
// over and clamped into the novel's range, or forced to 0 for a chapterless
// novel. With resume enabled the saved chapter is used instead.
func (r *Reader) Open(novel *data.Novel) ContentRequest {
	r.novel = novel

	if r.resume {
		if ch, ok, err := r.progress.GetProgress(novel.ID); err != nil {
			r.logger.Warn("Failed to read reading progress", zap.String("novel", novel.ID), zap.Error(err))
		} else if ok {
			r.chapter = ch
		}
	}

	switch {
	case !novel.HasChapters():
		r.chapter = 0
	case r.chapter >= len(novel.Chapters):
		r.chapter = len(novel.Chapters) - 1
	case r.chapter < 0:
		r.chapter = 0
	}

	return r.enter()
}

// Close drops the open novel. The next Open starts from the first chapter.
func (r *Reader) Close() {
	r.novel = nil
	r.chapter = 0
}

func (r *Reader) Novel() *data.Novel {
	return r.novel
}

func (r *Reader) Chapter() int {
	return r.chapter
}

// CurrentChapter is the chapter entry at the current index, or nil.
func (r *Reader) CurrentChapter() *data.Chapter {
	if r.novel == nil {
		return nil
	}
	return r.novel.Chapter(r.chapter)
}

func (r *Reader) CanPrev() bool {
	return r.novel != nil && r.chapter > 0
}

func (r *Reader) CanNext() bool {
	return r.novel != nil && r.novel.HasChapters() && r.chapter < len(r.novel.Chapters)-1
}

// Prev moves one chapter back. ok is false at the first chapter.
func (r *Reader) Prev() (req ContentRequest, ok bool) {
	if !r.CanPrev() {
		return ContentRequest{}, false
	}
	r.chapter--
	return r.enter(), true
}

// Next moves one chapter forward. ok is false at the last chapter.
func (r *Reader) Next() (req ContentRequest, ok bool) {
	if !r.CanNext() {
		return ContentRequest{}, false
	}
	r.chapter++
	return r.enter(), true
}

// Goto jumps straight to chapter i of the open novel.
func (r *Reader) Goto(i int) (ContentRequest, error) {
	if r.novel == nil {
		return ContentRequest{}, ErrNoNovel
	}
	if err := checkChapter(r.novel, i); err != nil {
		return ContentRequest{}, err
	}
	r.chapter = i
	return r.enter(), nil
}

// OpenAt switches to novel at chapter i. Nothing changes, and nothing is
// saved, when i is out of range.
func (r *Reader) OpenAt(novel *data.Novel, i int) (ContentRequest, error) {
	if err := checkChapter(novel, i); err != nil {
		return ContentRequest{}, err
	}
	r.novel = novel
	r.chapter = i
	return r.enter(), nil
}

func checkChapter(novel *data.Novel, i int) error {
	last := 0
	if novel.HasChapters() {
		last = len(novel.Chapters) - 1
	}
	if i < 0 || i > last {
		return fmt.Errorf("chapter %d out of range [0, %d]", i, last)
	}
	return nil
}

func (r *Reader) enter() ContentRequest {
	req := r.Request()

	if err := r.progress.SaveProgress(r.novel.ID, r.chapter); err != nil {
		r.logger.Warn("Failed to save reading progress",
			zap.String("key", data.ProgressKey(r.novel.ID)),
			zap.Int("chapter", r.chapter),
			zap.Error(err))
	}

	return req
}

// Request resolves the content reference of the current state.
func (r *Reader) Request() ContentRequest {
	if r.novel == nil {
		return ContentRequest{}
	}
	req := ContentRequest{NovelID: r.novel.ID, Chapter: r.chapter}
	if ch := r.CurrentChapter(); ch != nil {
		req.Ref = ch.FilePath
		req.Chaptered = true
	} else {
		req.Ref = r.novel.FilePath
	}
	return req
}

// Fetch loads and splits the content of req. On failure the page holds the
// fallback sentence as its only paragraph. Fetch only reads from the source
// and may run concurrently with state changes.
func (r *Reader) Fetch(ctx context.Context, req ContentRequest) Page {
	page := Page{NovelID: req.NovelID, Chapter: req.Chapter}

	text, err := r.load(ctx, req)
	if err != nil {
		fallback := NovelErrorText
		if req.Chaptered {
			fallback = ChapterErrorText
		}
		r.logger.Error("Error loading content",
			zap.String("novel", req.NovelID),
			zap.Int("chapter", req.Chapter),
			zap.String("ref", req.Ref),
			zap.Error(err))
		page.Paragraphs = []string{fallback}
		page.Err = err
		return page
	}

	page.Paragraphs = SplitParagraphs(text)
	return page
}

func (r *Reader) load(ctx context.Context, req ContentRequest) (string, error) {
	if req.NovelID == "" {
		return "", ErrNoNovel
	}
	if req.Ref == "" {
		return "", fmt.Errorf("novel %s: %w", req.NovelID, ErrNoContent)
	}
	return r.source.Content(ctx, req.Ref)
}
