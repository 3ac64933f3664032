package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/novels/pkg/app/styles"
)

// ChapterPosition labels the current chapter, e.g. "第 3 話".
func ChapterPosition(index int) string {
	return fmt.Sprintf("第 %d 話", index+1)
}

// ChapterProgress renders how far through a chapter sequence the reader is.
func ChapterProgress(index, total, width int) string {
	if total <= 0 {
		return ""
	}
	return renderProgressBar(index+1, total, width) +
		styles.MutedStyle.Render(fmt.Sprintf(" %d/%d", index+1, total))
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("─", width-filled))
}
