package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/brandvoice/archivist/internal/models"
)

// RenderResult is the rendered document body plus the heading-to-anchor
// assignments the reconciler produced while rendering.
type RenderResult struct {
	HTML string

	// Anchors maps each matched heading's raw text to the anchor id attached
	// to it. Unmatched headings are absent.
	Anchors map[string]string
}

// RenderDocument converts a document's markdown body to HTML, intercepting
// every level-2 heading the parser produces and reconciling it against the
// section corpus. Matched headings get the section's anchor id as their HTML
// id attribute.
func RenderDocument(doc *models.Document, sections []models.Section) (*RenderResult, error) {
	transformer := &anchorTransformer{
		sections: sections,
		anchors:  make(map[string]string),
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(transformer, 100)),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(doc.ReaderContent()), &buf); err != nil {
		return nil, fmt.Errorf("failed to render document %s: %w", doc.ID, err)
	}

	return &RenderResult{
		HTML:    buf.String(),
		Anchors: transformer.anchors,
	}, nil
}

// anchorTransformer walks the parsed AST and assigns anchor ids to level-2
// headings via the reconciler. It runs once per parse, before rendering.
type anchorTransformer struct {
	sections []models.Section
	anchors  map[string]string
}

func (t *anchorTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		headingText := nodeText(heading, source)
		section := Reconcile(headingText, t.sections)
		if section == nil {
			// Not an error: the heading stays unanchored and unreachable
			// from the card index.
			return ast.WalkSkipChildren, nil
		}

		heading.SetAttributeString("id", []byte(section.AnchorID))
		t.anchors[headingText] = section.AnchorID

		return ast.WalkSkipChildren, nil
	})
}

// nodeText collects the raw text of a node's inline children
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
