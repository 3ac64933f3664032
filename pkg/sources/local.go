package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/kerbaras/novels/pkg/data"
)

// Local reads a novel site from a directory, using the same references the
// catalog would use when published.
type Local struct {
	fsys        fs.FS
	catalogPath string
}

func NewLocal(root, catalogPath string) *Local {
	return NewLocalFS(os.DirFS(root), catalogPath)
}

func NewLocalFS(fsys fs.FS, catalogPath string) *Local {
	if catalogPath == "" {
		catalogPath = DefaultCatalogPath
	}
	return &Local{fsys: fsys, catalogPath: catalogPath}
}

func (l *Local) Catalog(ctx context.Context) ([]data.Novel, error) {
	b, err := l.Asset(ctx, l.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	var novels []data.Novel
	if err := json.Unmarshal(b, &novels); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if novels == nil {
		novels = []data.Novel{}
	}
	return novels, nil
}

func (l *Local) Content(ctx context.Context, ref string) (string, error) {
	b, err := l.Asset(ctx, ref)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (l *Local) Asset(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Clean("/" + strings.TrimSpace(ref))[1:]
	if name == "" {
		return nil, fmt.Errorf("empty reference: %w", ErrNotFound)
	}
	b, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	return b, err
}
