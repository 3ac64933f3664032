package components

import (
	"strings"

	"github.com/kerbaras/novels/pkg/app/styles"
)

// Placeholder renders n full-width skeleton lines.
func Placeholder(n, width int) string {
	if width < 1 {
		width = 1
	}
	line := styles.SkeletonStyle.Render(strings.Repeat("░", width))
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// bar renders a skeleton bar covering num/den of width.
func bar(width, num, den int) string {
	w := width * num / den
	if w < 1 {
		w = 1
	}
	return styles.SkeletonStyle.Render(strings.Repeat("░", w))
}
