package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/integrations"
	"github.com/kerbaras/novels/pkg/sources"
)

// NovelExporter fetches every chapter of a novel and hands them to an
// integrations.Exporter. Unlike the reader, a failed chapter fails the export.
type NovelExporter struct {
	source      sources.Source
	exporter    integrations.Exporter
	concurrency int
	logger      *zap.Logger
}

func NewNovelExporter(source sources.Source, exporter integrations.Exporter, concurrency int, logger *zap.Logger) *NovelExporter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &NovelExporter{source: source, exporter: exporter, concurrency: concurrency, logger: logger}
}

func (x *NovelExporter) Export(ctx context.Context, novel *data.Novel) (string, error) {
	if novel == nil {
		return "", fmt.Errorf("novel cannot be nil")
	}

	sections, err := x.sections(ctx, novel)
	if err != nil {
		return "", err
	}

	var cover []byte
	if novel.Cover != "" {
		cover, err = x.source.Asset(ctx, novel.Cover)
		if err != nil {
			x.logger.Warn("Exporting without cover", zap.String("novel", novel.ID), zap.Error(err))
			cover = nil
		}
	}

	path, err := x.exporter.Export(novel, sections, cover)
	if err != nil {
		return "", fmt.Errorf("failed to export %s: %w", novel.ID, err)
	}
	x.logger.Info("Novel exported", zap.String("novel", novel.ID), zap.String("path", path), zap.Int("sections", len(sections)))
	return path, nil
}

func (x *NovelExporter) sections(ctx context.Context, novel *data.Novel) ([]integrations.Section, error) {
	if !novel.HasChapters() {
		if novel.FilePath == "" {
			return nil, fmt.Errorf("novel %s: %w", novel.ID, ErrNoContent)
		}
		text, err := x.source.Content(ctx, novel.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", novel.FilePath, err)
		}
		return []integrations.Section{{Title: novel.Title, Paragraphs: SplitParagraphs(text)}}, nil
	}

	sections := make([]integrations.Section, len(novel.Chapters))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.concurrency)

	for i, chapter := range novel.Chapters {
		g.Go(func() error {
			text, err := x.source.Content(ctx, chapter.FilePath)
			if err != nil {
				return fmt.Errorf("chapter %s: %w", chapter.ID, err)
			}
			sections[i] = integrations.Section{Title: chapter.Title, Paragraphs: SplitParagraphs(text)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sections, nil
}
