package integrations

import "github.com/kerbaras/novels/pkg/data"

// Section is one chapter worth of paragraphs.
type Section struct {
	Title      string
	Paragraphs []string
}

type Exporter interface {
	Export(novel *data.Novel, sections []Section, cover []byte) (string, error)
}
