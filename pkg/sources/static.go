package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kerbaras/novels/pkg/data"
	"github.com/kerbaras/novels/pkg/utils"
)

const DefaultCatalogPath = "/novels/index.json"

var (
	ErrNotFound = errors.New("not found")
	ErrStatus   = utils.ErrStatus
)

// Static reads a novel site published over HTTP(S).
type Static struct {
	api         *utils.API
	catalogPath string
}

func NewStatic(baseURL, catalogPath string, timeout time.Duration) *Static {
	if catalogPath == "" {
		catalogPath = DefaultCatalogPath
	}
	return &Static{api: utils.NewAPI(baseURL, timeout), catalogPath: catalogPath}
}

func (s *Static) Catalog(ctx context.Context) ([]data.Novel, error) {
	var novels []data.Novel
	if err := s.api.Get(ctx, s.catalogPath, nil, &novels); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if novels == nil {
		novels = []data.Novel{}
	}
	return novels, nil
}

func (s *Static) Content(ctx context.Context, ref string) (string, error) {
	b, err := s.Asset(ctx, ref)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Static) Asset(ctx context.Context, ref string) ([]byte, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, fmt.Errorf("empty reference: %w", ErrNotFound)
	}
	return s.api.GetBytes(ctx, ref)
}
