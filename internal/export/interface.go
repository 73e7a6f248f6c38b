package export

import (
	"fmt"
	"io"

	"cursorchat/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(chat *internal.Chat, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "html":
		return &HTMLExporter{}, nil
	case "txt", "text":
		return &TextExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, md, html, txt, yaml)", format)
	}
}
