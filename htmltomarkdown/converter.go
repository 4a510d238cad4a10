// Package htmltomarkdown renders archive snapshots as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pinmark"
)

// Ensure Converter implements pinmark.Converter at compile time.
var _ pinmark.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown, resolving relative links
// against baseURL when it is set.
func (c *Converter) Convert(html string, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pinmark.Errorf(pinmark.EINVALID, "empty HTML input")
	}

	var result string
	var err error
	if baseURL != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(baseURL))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
