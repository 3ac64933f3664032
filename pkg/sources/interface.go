package sources

import (
	"context"

	"github.com/kerbaras/novels/pkg/data"
)

// Source serves the static assets of a novel site: the catalog document,
// the content files it references and cover images.
type Source interface {
	Catalog(ctx context.Context) ([]data.Novel, error)
	Content(ctx context.Context, ref string) (string, error)
	Asset(ctx context.Context, ref string) ([]byte, error)
}
