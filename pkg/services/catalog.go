package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/sources"
)

// CatalogState is what the catalog view renders from.
type CatalogState struct {
	Novels []data.Novel
	Loaded bool
}

// CatalogLoader fetches the catalog document once. It never retries and
// never publishes a partial catalog.
type CatalogLoader struct {
	source sources.Source
	logger *zap.Logger
}

func NewCatalogLoader(source sources.Source, logger *zap.Logger) *CatalogLoader {
	return &CatalogLoader{source: source, logger: logger}
}

func (l *CatalogLoader) Fetch(ctx context.Context) ([]data.Novel, error) {
	return l.source.Catalog(ctx)
}

// Load returns the parsed catalog, or an empty one if anything went wrong.
// Either way the state is marked loaded.
func (l *CatalogLoader) Load(ctx context.Context) CatalogState {
	novels, err := l.Fetch(ctx)
	if err != nil {
		l.logger.Error("Error loading novels", zap.Error(err))
		return CatalogState{Novels: []data.Novel{}, Loaded: true}
	}
	l.logger.Debug("Catalog loaded", zap.Int("novels", len(novels)))
	return CatalogState{Novels: novels, Loaded: true}
}
