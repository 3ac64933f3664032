package services

import "strings"

// SplitParagraphs splits text on blank lines. Paragraphs are returned
// verbatim and in order; text without a blank line is a single paragraph.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n\n")
}
