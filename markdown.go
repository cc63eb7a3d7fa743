package printplate

import (
	"bytes"
	"context"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownConverter abstracts markdown-to-HTML conversion so rendering can
// be tested without coupling to a specific engine's output.
type MarkdownConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions and
// syntax highlighting for fenced code blocks.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("friendly"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // self-closing tags
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts markdown content to an HTML fragment. The fragment is
// inserted into a caption or note block, so no document wrapper is added.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}
	return buf.String(), nil
}
