package integrations

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderCover(t *testing.T) {
	img := createTestPNG(t, 12, 18, color.RGBA{R: 10, G: 20, B: 200, A: 255})

	out, err := RenderCover(img, 4, 3)
	if err != nil {
		t.Fatalf("RenderCover failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if plain := ansi.Strip(line); plain != "▀▀▀▀" {
			t.Errorf("Row %d: expected 4 half blocks, got %q", i, plain)
		}
	}
}

func TestRenderCoverInvalid(t *testing.T) {
	if _, err := RenderCover([]byte("not an image"), 4, 3); err == nil {
		t.Error("Expected decode error")
	}

	img := createTestPNG(t, 2, 2, color.White)
	if _, err := RenderCover(img, 0, 3); err == nil {
		t.Error("Expected error for empty size")
	}
}
