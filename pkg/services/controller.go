package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/config"
	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/integrations"
	"github.com/kerbaras/novels/pkg/sources"
)

// ProgressRepository is the storage the controller needs.
type ProgressRepository interface {
	ProgressStore
	ListProgress() ([]*data.Progress, error)
	Close() error
}

type NovelController struct {
	source   sources.Source
	repo     ProgressRepository
	logger   *zap.Logger
	catalog  *CatalogLoader
	reader   *Reader
	exporter *NovelExporter
}

func NewNovelController(cfg config.Config, logger *zap.Logger) (*NovelController, error) {
	source := sources.New(cfg.Source.Location, cfg.Source.CatalogPath, cfg.SourceTimeout())

	repo, err := data.NewDuckDBRepository(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}

	return NewNovelControllerWith(cfg, source, repo, logger), nil
}

func NewNovelControllerWith(cfg config.Config, source sources.Source, repo ProgressRepository, logger *zap.Logger) *NovelController {
	reader := NewReader(source, repo, logger)
	reader.SetResume(cfg.Reader.Resume)

	builder := integrations.NewEPubBuilder(cfg.Export.OutputDir, cfg.Export.Language)

	return &NovelController{
		source:   source,
		repo:     repo,
		logger:   logger,
		catalog:  NewCatalogLoader(source, logger),
		reader:   reader,
		exporter: NewNovelExporter(source, builder, cfg.Export.Concurrency, logger),
	}
}

func (c *NovelController) Catalog() *CatalogLoader {
	return c.catalog
}

func (c *NovelController) Reader() *Reader {
	return c.reader
}

func (c *NovelController) Logger() *zap.Logger {
	return c.logger
}

// FindNovel looks a novel up by ID, then by case-insensitive title.
func (c *NovelController) FindNovel(ctx context.Context, query string) (*data.Novel, error) {
	novels, err := c.catalog.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range novels {
		if novels[i].ID == query {
			return &novels[i], nil
		}
	}
	for i := range novels {
		if strings.EqualFold(novels[i].Title, query) {
			return &novels[i], nil
		}
	}
	return nil, fmt.Errorf("novel %q: %w", query, sources.ErrNotFound)
}

// ReadChapter opens novel at chapter and fetches it, recording progress.
func (c *NovelController) ReadChapter(ctx context.Context, novel *data.Novel, chapter int) (Page, error) {
	req, err := c.reader.OpenAt(novel, chapter)
	if err != nil {
		return Page{}, err
	}
	page := c.reader.Fetch(ctx, req)
	return page, page.Err
}

func (c *NovelController) Progress() ([]*data.Progress, error) {
	return c.repo.ListProgress()
}

func (c *NovelController) ExportEPUB(ctx context.Context, novel *data.Novel) (string, error) {
	return c.exporter.Export(ctx, novel)
}

// Cover renders a novel's cover image as terminal cells.
func (c *NovelController) Cover(ctx context.Context, novel *data.Novel, cols, rows int) (string, error) {
	if novel.Cover == "" {
		return "", fmt.Errorf("novel %s has no cover: %w", novel.ID, sources.ErrNotFound)
	}
	img, err := c.source.Asset(ctx, novel.Cover)
	if err != nil {
		return "", err
	}
	return integrations.RenderCover(img, cols, rows)
}

func (c *NovelController) Close() error {
	return c.repo.Close()
}
