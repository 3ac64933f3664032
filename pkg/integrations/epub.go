package integrations

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/novels/pkg/data"
)

type EPubBuilder struct {
	outputDir string
	language  string
}

func NewEPubBuilder(outputDir, language string) *EPubBuilder {
	if language == "" {
		language = "ja"
	}
	return &EPubBuilder{outputDir: outputDir, language: language}
}

func (p *EPubBuilder) Export(novel *data.Novel, sections []Section, cover []byte) (string, error) {
	return p.CreateEPub(novel, sections, cover)
}

// CreateEPub writes the novel to <outputDir>/<title>.epub, one EPUB section
// per Section in order.
func (p *EPubBuilder) CreateEPub(novel *data.Novel, sections []Section, cover []byte) (string, error) {
	if len(sections) == 0 {
		return "", fmt.Errorf("no sections to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(novel.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	if novel.Author != "" {
		e.SetAuthor(novel.Author)
	}
	if novel.Description != "" {
		e.SetDescription(novel.Description)
	}
	e.SetLang(p.language)
	e.SetIdentifier("urn:novels:" + novel.ID)

	// go-epub reads media when writing, so staged files live until Write returns.
	staging, err := os.MkdirTemp("", "novels-epub-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if len(cover) > 0 {
		if err := p.addCover(e, novel, cover, staging); err != nil {
			return "", err
		}
	}

	for i, section := range sections {
		title := section.Title
		if title == "" {
			title = fmt.Sprintf("%d", i+1)
		}
		if _, err := e.AddSection(sectionHTML(title, section.Paragraphs), title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add section %q: %w", title, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(novel.Title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// addCover stages the cover bytes in dir, since go-epub only adds images by
// path or URL. Unknown image types are skipped.
func (p *EPubBuilder) addCover(e *epub.Epub, novel *data.Novel, cover []byte, dir string) error {
	ext := imageExt(cover)
	if ext == "" {
		return nil
	}

	staged := filepath.Join(dir, "cover"+ext)
	if err := os.WriteFile(staged, cover, 0644); err != nil {
		return fmt.Errorf("failed to stage cover: %w", err)
	}

	internalPath, err := e.AddImage(staged, "cover"+ext)
	if err != nil {
		return fmt.Errorf("failed to add cover: %w", err)
	}

	body := fmt.Sprintf(`<div class="cover"><img src="%s" alt="%s cover" style="width:100%%;height:auto;"/></div>`,
		internalPath, html.EscapeString(novel.Title))
	if _, err := e.AddSection(body, novel.Title, "cover.xhtml", ""); err != nil {
		return fmt.Errorf("failed to add cover section: %w", err)
	}
	return nil
}

func sectionHTML(title string, paragraphs []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(title)))
	for _, paragraph := range paragraphs {
		text := html.EscapeString(paragraph)
		text = strings.ReplaceAll(text, "\n", "<br/>")
		b.WriteString(fmt.Sprintf("<p>%s</p>\n", text))
	}
	return b.String()
}

// imageExt returns the file extension for a sniffed image type, or "" for
// anything that is not an image.
func imageExt(b []byte) string {
	switch http.DetectContentType(b) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "novel"
	}
	return result
}
