package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Drawing Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Scene\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Canvas | %dx%d |\n", s.Scene.CanvasWidth, s.Scene.CanvasHeight)
	fmt.Fprintf(&b, "| Seed | %d |\n", s.Scene.Seed)
	fmt.Fprintf(&b, "| Circle mode | %s |\n", s.Scene.CircleMode)
	fmt.Fprintf(&b, "| Workers | %d |\n", s.Scene.Workers)
	fmt.Fprintf(&b, "| Explicit shapes | %d |\n", s.Scene.ExplicitShapes)
	fmt.Fprintf(&b, "| Random shapes | %d |\n", s.Scene.RandomShapes)
	fmt.Fprintf(&b, "| Pixel writes | %d |\n", s.Scene.PixelWrites)

	b.WriteString("\n## Output\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Path | `%s` |\n", s.Output.Path)
	fmt.Fprintf(&b, "| Format | %s |\n", s.Output.Format)
	fmt.Fprintf(&b, "| Size | %dx%d |\n", s.Output.Width, s.Output.Height)
	fmt.Fprintf(&b, "| File size | %s |\n", formatBytes(s.Output.FileSize))

	return b.String()
}

func formatBytes(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
