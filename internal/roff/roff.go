// Package roff renders a goldmark document tree as roff macros for the
// troff/groff family, in either the -ms (technical document) or man(7)
// macro package. The two packages are sibling dialects: block structure
// is the same, only the macro names differ.
package roff

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Config selects the macro package emitted by the renderer.
type Config struct {
	Man bool // man(7) macros instead of -ms
}

// NewRenderer returns a goldmark renderer producing roff output.
// Renderers are single-use: one conversion per instance.
func NewRenderer(cfg Config) renderer.Renderer {
	r := &roffRenderer{cfg: cfg, atNewline: true}
	// Priority below the extension defaults (500) so the table and
	// strikethrough kinds resolve here instead of the HTML renderers
	// the extensions register.
	return renderer.NewRenderer(
		renderer.WithNodeRenderers(util.Prioritized(r, 100)),
	)
}

type roffRenderer struct {
	cfg       Config
	atNewline bool
	listDepth int
	counters  []int
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *roffRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindTextBlock, r.renderTextBlock)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)

	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)

	reg.Register(east.KindTable, r.renderTable)
	reg.Register(east.KindTableHeader, r.renderTableHeader)
	reg.Register(east.KindTableRow, r.renderTableRow)
	reg.Register(east.KindTableCell, r.renderTableCell)
	reg.Register(east.KindStrikethrough, r.renderStrikethrough)
	reg.Register(east.KindTaskCheckBox, r.renderTaskCheckBox)
	reg.Register(east.KindFootnote, r.renderFootnote)
	reg.Register(east.KindFootnoteList, r.renderFootnoteList)
	reg.Register(east.KindFootnoteLink, r.renderFootnoteLink)
	reg.Register(east.KindFootnoteBacklink, r.renderFootnoteBacklink)
	reg.Register(east.KindDefinitionList, r.renderDefinitionList)
	reg.Register(east.KindDefinitionTerm, r.renderDefinitionTerm)
	reg.Register(east.KindDefinitionDescription, r.renderDefinitionDescription)
}

// macro writes a roff request on its own line.
func (r *roffRenderer) macro(w util.BufWriter, s string) {
	r.newline(w)
	_, _ = w.WriteString(s)
	_ = w.WriteByte('\n')
	r.atNewline = true
}

// raw writes s without text escaping, for inline font escapes and
// preformatted macro arguments.
func (r *roffRenderer) raw(w util.BufWriter, s string) {
	if s == "" {
		return
	}
	_, _ = w.WriteString(s)
	r.atNewline = strings.HasSuffix(s, "\n")
}

// newline guarantees the writer sits at the start of a line.
func (r *roffRenderer) newline(w util.BufWriter) {
	if !r.atNewline {
		_ = w.WriteByte('\n')
		r.atNewline = true
	}
}

// text writes body text, escaping backslashes and guarding characters
// that would make a line start look like a control request.
func (r *roffRenderer) text(w util.BufWriter, b []byte) {
	for _, c := range b {
		switch {
		case c == '\\':
			_, _ = w.WriteString("\\e")
			r.atNewline = false
		case c == '\n':
			_ = w.WriteByte('\n')
			r.atNewline = true
		case r.atNewline && (c == '.' || c == '\''):
			_, _ = w.WriteString("\\&")
			_ = w.WriteByte(c)
			r.atNewline = false
		default:
			_ = w.WriteByte(c)
			r.atNewline = false
		}
	}
}

// writeLines emits the raw source lines of a block node.
func (r *roffRenderer) writeLines(w util.BufWriter, source []byte, n ast.Node) {
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		r.text(w, line.Value(source))
	}
}

func (r *roffRenderer) renderDocument(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderHeading(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		switch {
		case r.cfg.Man && n.Level <= 2:
			r.macro(w, ".SH")
		case r.cfg.Man:
			r.macro(w, ".SS")
		default:
			r.macro(w, fmt.Sprintf(".NH %d", n.Level))
		}
	} else {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderParagraph(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		switch {
		case inTightContext(node):
			// The container's macro already broke the line; later
			// paragraphs in the same container just need a space.
			if node.PreviousSibling() != nil {
				r.macro(w, ".sp")
			}
		case r.cfg.Man:
			r.macro(w, ".PP")
		default:
			r.macro(w, ".LP")
		}
	} else {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

// inTightContext reports whether a paragraph sits in a container whose
// own macro (.IP, .TP) already positions the text.
func inTightContext(node ast.Node) bool {
	p := node.Parent()
	if p == nil {
		return false
	}
	switch p.Kind() {
	case ast.KindListItem, east.KindFootnote, east.KindDefinitionDescription:
		return true
	}
	return false
}

func (r *roffRenderer) renderTextBlock(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderBlockquote(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	begin, end := ".QS", ".QE"
	if r.cfg.Man {
		begin, end = ".RS", ".RE"
	}
	if entering {
		r.macro(w, begin)
	} else {
		r.macro(w, end)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		if r.cfg.Man {
			r.macro(w, ".EX")
		} else {
			r.macro(w, ".DS L")
		}
		r.writeLines(w, source, node)
	} else {
		r.newline(w)
		if r.cfg.Man {
			r.macro(w, ".EE")
		} else {
			r.macro(w, ".DE")
		}
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderHTMLBlock(_ util.BufWriter, _ []byte, _ ast.Node, _ bool) (ast.WalkStatus, error) {
	// Raw HTML has no roff representation.
	return ast.WalkSkipChildren, nil
}

func (r *roffRenderer) renderList(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	if entering {
		if r.listDepth > 0 {
			r.macro(w, ".RS")
		}
		r.listDepth++
		start := 1
		if n.IsOrdered() {
			start = n.Start
		}
		r.counters = append(r.counters, start)
	} else {
		r.counters = r.counters[:len(r.counters)-1]
		r.listDepth--
		if r.listDepth > 0 {
			r.macro(w, ".RE")
		}
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderListItem(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		parent, ok := node.Parent().(*ast.List)
		if ok && parent.IsOrdered() {
			k := r.counters[len(r.counters)-1]
			r.counters[len(r.counters)-1]++
			r.macro(w, fmt.Sprintf(".IP %d. 4", k))
		} else {
			r.macro(w, `.IP \(bu 2`)
		}
	} else {
		r.newline(w)
	}
	return ast.WalkContinue, nil
}

func (r *roffRenderer) renderThematicBreak(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.macro(w, ".ti 0")
		r.raw(w, "\\l'\\n(.lu'\n")
	}
	return ast.WalkContinue, nil
}
